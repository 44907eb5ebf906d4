package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JOhn12345re/lessonpdf"
	"github.com/JOhn12345re/lessonpdf/internal/yamlutil"
)

//go:embed volumes/*.yaml
var volumes embed.FS

// ErrVolumeNotFound indicates no embedded volume has the requested name.
var ErrVolumeNotFound = errors.New("volume not found")

// document mirrors the on-disk layout of a volume.
type document struct {
	Name         string            `yaml:"name"`
	Cover        coverDoc          `yaml:"cover"`
	Notice       string            `yaml:"notice"`
	Introduction *sectionDoc       `yaml:"introduction"`
	Labels       labelsDoc         `yaml:"labels"`
	Colors       map[string]string `yaml:"colors"`
	Lessons      []lessonDoc       `yaml:"lessons"`
	Closing      sectionDoc        `yaml:"closing"`
}

type coverDoc struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
}

type sectionDoc struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

type labelsDoc struct {
	Reference        string `yaml:"reference"`
	Reflection       string `yaml:"reflection"`
	Prompt           string `yaml:"prompt"`
	TermHeader       string `yaml:"termHeader"`
	DefinitionHeader string `yaml:"definitionHeader"`
}

type lessonDoc struct {
	Title      string        `yaml:"title"`
	Reference  string        `yaml:"reference"`
	Narrative  string        `yaml:"narrative"`
	Image      string        `yaml:"image"`
	Citations  []citationDoc `yaml:"citations"`
	Vocabulary []termDoc     `yaml:"vocabulary"`
	Reflection string        `yaml:"reflection"`
	Questions  []string      `yaml:"questions"`
}

type citationDoc struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

type termDoc struct {
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
}

// Names returns the embedded volume names in lexical order.
func Names() []string {
	entries, err := fs.ReadDir(volumes, "volumes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded volume called name. The volume is named
// after its catalog key so the build output matches Names.
func Load(name string) (*lessonpdf.Volume, error) {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, fmt.Errorf("%w: %q", ErrVolumeNotFound, name)
	}
	data, err := volumes.ReadFile(path.Join("volumes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrVolumeNotFound, name)
	}
	v, err := parse(data, name)
	if err != nil {
		return nil, err
	}
	v.Name = name
	return v, nil
}

// LoadFile reads a volume from a YAML file. A document without a name
// takes the file's base name.
func LoadFile(p string) (*lessonpdf.Volume, error) {
	data, err := yamlutil.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return parse(data, base)
}

// Parse decodes and validates one volume document.
func Parse(data []byte) (*lessonpdf.Volume, error) {
	return parse(data, "")
}

func parse(data []byte, fallbackName string) (*lessonpdf.Volume, error) {
	var doc document
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", lessonpdf.ErrInvalidCatalog, err)
	}
	v := doc.volume()
	if v.Name == "" {
		v.Name = fallbackName
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// volume converts the document to the library model.
func (d *document) volume() *lessonpdf.Volume {
	v := &lessonpdf.Volume{
		Name: d.Name,
		Cover: lessonpdf.Cover{
			Title:    d.Cover.Title,
			Subtitle: d.Cover.Subtitle,
			ImageURL: d.Cover.Image,
		},
		Notice:  d.Notice,
		Closing: lessonpdf.Section(d.Closing),
		Labels:  lessonpdf.Labels(d.Labels),
		Lessons: make([]lessonpdf.Lesson, 0, len(d.Lessons)),
	}
	if d.Introduction != nil {
		intro := lessonpdf.Section(*d.Introduction)
		v.Introduction = &intro
	}
	if len(d.Colors) > 0 {
		v.Colors = make(map[lessonpdf.StyleName]string, len(d.Colors))
		for k, c := range d.Colors {
			v.Colors[lessonpdf.StyleName(k)] = c
		}
	}

	for _, l := range d.Lessons {
		lesson := lessonpdf.Lesson{
			Title:      l.Title,
			Reference:  l.Reference,
			Narrative:  l.Narrative,
			Reflection: l.Reflection,
			Questions:  l.Questions,
			ImageURL:   l.Image,
		}
		for _, c := range l.Citations {
			lesson.Citations = append(lesson.Citations, lessonpdf.Citation(c))
		}
		for _, t := range l.Vocabulary {
			lesson.Vocabulary = append(lesson.Vocabulary, lessonpdf.Term{Word: t.Term, Definition: t.Definition})
		}
		v.Lessons = append(v.Lessons, lesson)
	}
	return v
}
