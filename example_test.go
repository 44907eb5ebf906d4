package lessonpdf_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/JOhn12345re/lessonpdf"
)

func exampleVolume() *lessonpdf.Volume {
	return &lessonpdf.Volume{
		Name:  "exemple",
		Cover: lessonpdf.Cover{Title: "Les héros de la foi", Subtitle: "Volume 1"},
		Lessons: []lessonpdf.Lesson{{
			Title:      "Noé et l'arche",
			Reference:  "Genèse 6-9",
			Narrative:  "Noé construit une arche.",
			Vocabulary: []lessonpdf.Term{{Word: "Arche", Definition: "Grand bateau"}},
			Reflection: "Dieu protège.",
			Questions:  []string{"Combien d'animaux ?"},
		}},
		Closing: lessonpdf.Section{Text: "Fin."},
	}
}

// Example builds a one-lesson volume without network access and counts
// its blocks.
func Example() {
	b := lessonpdf.NewBuilder(lessonpdf.OfflineResolver{})

	doc, err := b.Build(context.Background(), exampleVolume())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("blocks:", len(doc.Blocks))
	fmt.Println("page breaks:", doc.Count(lessonpdf.KindPageBreak))
	fmt.Println("tables:", doc.Count(lessonpdf.KindTable))
	// Output:
	// blocks: 15
	// page breaks: 3
	// tables: 1
}

// ExampleRenderer_RenderHTML previews the HTML that Chrome would print.
// No browser is started.
func ExampleRenderer_RenderHTML() {
	doc, err := lessonpdf.NewBuilder(lessonpdf.OfflineResolver{}).Build(context.Background(), exampleVolume())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, err := lessonpdf.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	html, err := r.RenderHTML(context.Background(), doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Contains(string(html), "<th>Term</th><th>Definition</th>"))
	// Output: true
}

// ExampleVolume_Validate shows how an invalid lesson is reported.
func ExampleVolume_Validate() {
	v := exampleVolume()
	v.Lessons[0].Narrative = ""

	err := v.Validate()
	fmt.Println(err)
	// Output: invalid catalog: lesson 0 ("Noé et l'arche"): Narrative: cannot be blank.
}
