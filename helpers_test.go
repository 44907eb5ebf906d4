package lessonpdf

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"
)

// scriptedResolver returns canned results and records every call.
// Unknown URLs resolve to Absent.
type scriptedResolver struct {
	mu      sync.Mutex
	results map[string]ImageResult
	delays  map[string]time.Duration
	calls   []string
}

func (s *scriptedResolver) Resolve(_ context.Context, url string) ImageResult {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	res, ok := s.results[url]
	delay := s.delays[url]
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return Absent
	}
	return res
}

func (s *scriptedResolver) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// pngBytes encodes a tiny opaque PNG.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := range 2 {
		for y := range 2 {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

// twoLessonVolume has a first lesson with 3 terms, 2 citations and
// 2 questions, and a second lesson with no terms, no citations and one
// question. Both lessons and the cover reference images.
func twoLessonVolume() *Volume {
	return &Volume{
		Name: "test",
		Cover: Cover{
			Title:    "Les héros de la foi",
			Subtitle: "Volume d'essai",
			ImageURL: "https://img.test/cover.jpg",
		},
		Lessons: []Lesson{
			{
				Title:     "🔥 Le buisson ardent",
				Reference: "Exode 3",
				Narrative: "Moïse garde le troupeau.",
				Citations: []Citation{
					{Label: "Exode 3 :2", Text: "Le buisson était tout en feu."},
					{Label: "Exode 3 :5", Text: "Ôte tes souliers."},
				},
				Vocabulary: []Term{
					{Word: "Buisson", Definition: "Petit arbre"},
					{Word: "Sanctuaire", Definition: "Lieu saint"},
					{Word: "Troupeau", Definition: "Groupe d'animaux"},
				},
				Reflection: "Dieu appelle.",
				Questions:  []string{"Que voit Moïse ?", "Pourquoi ôter ses souliers ?"},
				ImageURL:   "https://img.test/lesson1.jpg",
			},
			{
				Title:      "🌊 La mer Rouge",
				Reference:  "Exode 14",
				Narrative:  "Le peuple traverse la mer.",
				Reflection: "Dieu ouvre un chemin.",
				Questions:  []string{"Qui tend la main ?"},
				ImageURL:   "https://img.test/lesson2.jpg",
			},
		},
		Closing: Section{Text: "Fin du volume."},
	}
}

func kinds(blocks []Block) []BlockKind {
	out := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind()
	}
	return out
}
