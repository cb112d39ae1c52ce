package content

import "testing"

func TestCatalogLoadsAllLessons(t *testing.T) {
	lessons, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(lessons) != 4 {
		t.Fatalf("got %d lessons, want 4", len(lessons))
	}
	for i, id := range []string{"cavitation", "straingauge", "tensorcore", "overlay"} {
		if lessons[i].ID != id {
			t.Errorf("lesson %d = %q, want %q", i, lessons[i].ID, id)
		}
	}
}

func TestEveryLessonIsComplete(t *testing.T) {
	lessons, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	for _, l := range lessons {
		if l.Title == "" || l.Hook == "" || l.Review == "" || l.TwistReview == "" || l.Mastery == "" {
			t.Errorf("%s: missing narrative text", l.ID)
		}
		if len(l.Predict.Options) < 2 || len(l.TwistPredict.Options) < 2 {
			t.Errorf("%s: prediction prompts need at least two options", l.ID)
		}
		if len(l.Applications) != 4 {
			t.Errorf("%s: %d applications, want 4", l.ID, len(l.Applications))
		}
		if len(l.Bank.Questions) != 10 {
			t.Errorf("%s: %d questions, want 10", l.ID, len(l.Bank.Questions))
		}
		if l.Bank.PassThreshold < 1 || l.Bank.PassThreshold > len(l.Bank.Questions) {
			t.Errorf("%s: pass threshold %d out of range", l.ID, l.Bank.PassThreshold)
		}
	}
}

func TestEveryQuestionHasOneCorrectOption(t *testing.T) {
	lessons, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	for _, l := range lessons {
		for i, q := range l.Bank.Questions {
			correct := 0
			for _, o := range q.Options {
				if o.Correct {
					correct++
				}
			}
			if correct != 1 {
				t.Errorf("%s question %d: %d correct options", l.ID, i, correct)
			}
			if _, ok := q.CorrectOption(); !ok {
				t.Errorf("%s question %d: CorrectOption not found", l.ID, i)
			}
		}
	}
}

func TestPredictCorrectIDsAmongOptions(t *testing.T) {
	lessons, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	for _, l := range lessons {
		for _, p := range []PredictPrompt{l.Predict, l.TwistPredict} {
			found := false
			for _, o := range p.Options {
				if o.ID == p.CorrectID {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: correct id %q not among options", l.ID, p.CorrectID)
			}
		}
	}
}

func TestGet(t *testing.T) {
	l, err := Get("overlay")
	if err != nil {
		t.Fatalf("Get(overlay): %v", err)
	}
	if l.Predict.CorrectID != "problem" {
		t.Errorf("overlay predict correct id = %q", l.Predict.CorrectID)
	}
	if l.TwistPredict.CorrectID != "ok" {
		t.Errorf("overlay twist correct id = %q", l.TwistPredict.CorrectID)
	}

	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestCavitationDamageGate(t *testing.T) {
	l, err := Get("cavitation")
	if err != nil {
		t.Fatalf("Get(cavitation): %v", err)
	}
	if l.PlayDamageGate != 30 {
		t.Errorf("play damage gate = %v, want 30", l.PlayDamageGate)
	}
	if l.Bank.PassThreshold != 7 {
		t.Errorf("pass threshold = %d, want 7", l.Bank.PassThreshold)
	}
}

func TestSchemaRejectsMalformedLesson(t *testing.T) {
	compiled, err := compileSchema()
	if err != nil {
		t.Fatalf("compileSchema: %v", err)
	}
	// Missing required fields.
	if err := compiled.Validate(map[string]any{"id": "x"}); err == nil {
		t.Fatal("schema accepted a lesson with only an id")
	}
}

func TestToLessonRejectsBadBank(t *testing.T) {
	lf := lessonFile{
		ID:            "x",
		PassThreshold: 2,
		Predict:       predictFile{Correct: "a", Options: []categoryFile{{ID: "a"}, {ID: "b"}}},
		TwistPredict:  predictFile{Correct: "a", Options: []categoryFile{{ID: "a"}, {ID: "b"}}},
		Questions: []questionFile{
			{Options: []optionFile{{ID: "a", Correct: true}, {ID: "b", Correct: true}}},
		},
	}
	if _, err := lf.toLesson(); err == nil {
		t.Fatal("accepted a question with two correct options")
	}

	lf.Questions = []questionFile{
		{Options: []optionFile{{ID: "a", Correct: true}, {ID: "b"}}},
	}
	if _, err := lf.toLesson(); err == nil {
		t.Fatal("accepted pass threshold above question count")
	}

	lf.PassThreshold = 1
	lf.Predict.Correct = "zzz"
	if _, err := lf.toLesson(); err == nil {
		t.Fatal("accepted predict correct id outside options")
	}
}
