package lessonpdf

import (
	"errors"
	"strings"
	"testing"
)

func TestLesson_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lesson    Lesson
		wantErr   bool
		wantField string
	}{
		{"minimal", Lesson{Title: "T", Narrative: "N"}, false, ""},
		{"empty title", Lesson{Narrative: "N"}, true, "Title"},
		{"blank title", Lesson{Title: " \t", Narrative: "N"}, true, "Title"},
		{"empty narrative", Lesson{Title: "T"}, true, "Narrative"},
		{"optional fields may be empty", Lesson{Title: "🔥 T", Narrative: "N", Reference: ""}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.lesson.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantField != "" && !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() = %q, should name %s", err, tt.wantField)
			}
		})
	}
}

func TestVolume_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		if err := twoLessonVolume().Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("first invalid lesson wins", func(t *testing.T) {
		t.Parallel()

		v := twoLessonVolume()
		v.Lessons[0].Narrative = ""
		v.Lessons[1].Title = ""

		err := v.Validate()
		var ce *CatalogError
		if !errors.As(err, &ce) {
			t.Fatalf("Validate() = %v, want *CatalogError", err)
		}
		if ce.Index != 0 || ce.Title != v.Lessons[0].Title {
			t.Errorf("CatalogError = %+v", ce)
		}
		if !errors.Is(err, ErrInvalidCatalog) {
			t.Error("CatalogError should match ErrInvalidCatalog")
		}
	})

	t.Run("incomplete introduction", func(t *testing.T) {
		t.Parallel()

		for _, intro := range []Section{
			{Heading: "Introduction"},
			{Text: "Bienvenue"},
			{Heading: "  ", Text: "Bienvenue"},
		} {
			v := twoLessonVolume()
			v.Introduction = &intro
			err := v.Validate()
			if !errors.Is(err, ErrEmptyIntroduction) || !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("Validate(%+v) = %v, want ErrInvalidCatalog and ErrEmptyIntroduction", intro, err)
			}
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		t.Parallel()

		v := twoLessonVolume()
		v.Colors = map[StyleName]string{StyleTitle: "url(javascript:x)"}
		err := v.Validate()
		if !errors.Is(err, ErrInvalidColor) || !errors.Is(err, ErrInvalidCatalog) {
			t.Errorf("Validate() = %v, want ErrInvalidCatalog and ErrInvalidColor", err)
		}
	})
}

func TestCatalogError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("narrative: cannot be blank")

	withTitle := (&CatalogError{Index: 3, Title: "Le déluge", Err: cause}).Error()
	if !strings.Contains(withTitle, "lesson 3") || !strings.Contains(withTitle, `"Le déluge"`) {
		t.Errorf("Error() = %q", withTitle)
	}

	noTitle := (&CatalogError{Index: 0, Err: cause}).Error()
	if noTitle != "invalid catalog: lesson 0: narrative: cannot be blank" {
		t.Errorf("Error() = %q", noTitle)
	}

	if !errors.Is(&CatalogError{Err: cause}, cause) {
		t.Error("CatalogError should unwrap to its cause")
	}
}

func TestLabels_withDefaults(t *testing.T) {
	t.Parallel()

	got := Labels{Prompt: "💬 "}.withDefaults()
	want := DefaultLabels()
	want.Prompt = "💬 "
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
	if (Labels{}).withDefaults() != DefaultLabels() {
		t.Error("empty labels should equal DefaultLabels")
	}
	if got := (Labels{Reference: "", Reflection: " "}).withDefaults(); got.Reference != DefaultLabels().Reference || got.Reflection != " " {
		t.Errorf("withDefaults() = %+v, want default reference and blank reflection kept", got)
	}
}

func TestVolume_Defaults(t *testing.T) {
	t.Parallel()

	v := &Volume{}
	if v.notice() != DefaultNotice {
		t.Error("empty notice should use DefaultNotice")
	}
	if v.closingHeading() != DefaultClosingHeading {
		t.Error("empty closing heading should use DefaultClosingHeading")
	}
	v.Notice = "  \n"
	if v.notice() != DefaultNotice {
		t.Error("blank notice should use DefaultNotice")
	}
}
