package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Coder9204/sparklab/internal/quiz"
)

//go:embed data/*.json
var dataFS embed.FS

// lessonOrder fixes the catalog display order.
var lessonOrder = []string{"cavitation", "straingauge", "tensorcore", "overlay"}

type lessonFile struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Tagline        string            `json:"tagline"`
	Hook           string            `json:"hook"`
	Predict        predictFile       `json:"predict"`
	PlayHint       string            `json:"play_hint"`
	Review         string            `json:"review"`
	TwistPredict   predictFile       `json:"twist_predict"`
	TwistPlayHint  string            `json:"twist_play_hint"`
	TwistReview    string            `json:"twist_review"`
	Mastery        string            `json:"mastery"`
	PlayDamageGate float64           `json:"play_damage_gate"`
	PassThreshold  int               `json:"pass_threshold"`
	Applications   []applicationFile `json:"applications"`
	Questions      []questionFile    `json:"questions"`
}

type predictFile struct {
	Prompt  string         `json:"prompt"`
	Options []categoryFile `json:"options"`
	Correct string         `json:"correct"`
}

type categoryFile struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type applicationFile struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Answer      string `json:"answer"`
}

type questionFile struct {
	Scenario string       `json:"scenario"`
	Prompt   string       `json:"prompt"`
	Options  []optionFile `json:"options"`
}

type optionFile struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Correct bool   `json:"correct"`
}

var loadOnce = sync.OnceValues(loadCatalog)

// Catalog returns all lessons in display order. Content is embedded; an
// error here means a malformed data file shipped in the binary.
func Catalog() ([]Lesson, error) {
	return loadOnce()
}

// Get returns one lesson by id.
func Get(id string) (Lesson, error) {
	lessons, err := Catalog()
	if err != nil {
		return Lesson{}, err
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("unknown lesson %q", id)
}

func loadCatalog() ([]Lesson, error) {
	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile lesson schema: %w", err)
	}

	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded data: %w", err)
	}

	byID := make(map[string]Lesson, len(entries))
	for _, e := range entries {
		raw, err := dataFS.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		// The jsonschema library validates a parsed value, not raw bytes.
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("%s: invalid JSON: %w", e.Name(), err)
		}
		if err := compiled.Validate(parsed); err != nil {
			return nil, fmt.Errorf("%s: schema validation: %w", e.Name(), err)
		}

		var lf lessonFile
		if err := json.Unmarshal(raw, &lf); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", e.Name(), err)
		}
		lesson, err := lf.toLesson()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		byID[lesson.ID] = lesson
	}

	var lessons []Lesson
	for _, id := range lessonOrder {
		if l, ok := byID[id]; ok {
			lessons = append(lessons, l)
			delete(byID, id)
		}
	}
	// Any lessons outside the fixed order sort by id at the end.
	rest := make([]Lesson, 0, len(byID))
	for _, l := range byID {
		rest = append(rest, l)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].ID < rest[j].ID })
	lessons = append(lessons, rest...)

	return lessons, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(lessonSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://lesson.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

func (lf lessonFile) toLesson() (Lesson, error) {
	questions := make([]quiz.Question, 0, len(lf.Questions))
	for i, qf := range lf.Questions {
		q := quiz.Question{Scenario: qf.Scenario, Prompt: qf.Prompt}
		correct := 0
		for _, of := range qf.Options {
			if of.Correct {
				correct++
			}
			q.Options = append(q.Options, quiz.Option{ID: of.ID, Label: of.Label, Correct: of.Correct})
		}
		if correct != 1 {
			return Lesson{}, fmt.Errorf("question %d: %d options marked correct, want exactly 1", i, correct)
		}
		questions = append(questions, q)
	}

	if lf.PassThreshold > len(questions) {
		return Lesson{}, fmt.Errorf("pass threshold %d exceeds question count %d", lf.PassThreshold, len(questions))
	}

	predict, err := lf.Predict.toPrompt()
	if err != nil {
		return Lesson{}, fmt.Errorf("predict: %w", err)
	}
	twist, err := lf.TwistPredict.toPrompt()
	if err != nil {
		return Lesson{}, fmt.Errorf("twist_predict: %w", err)
	}

	apps := make([]Application, 0, len(lf.Applications))
	for _, af := range lf.Applications {
		apps = append(apps, Application(af))
	}

	return Lesson{
		ID:             lf.ID,
		Title:          lf.Title,
		Tagline:        lf.Tagline,
		Hook:           lf.Hook,
		Predict:        predict,
		PlayHint:       lf.PlayHint,
		Review:         lf.Review,
		TwistPredict:   twist,
		TwistPlayHint:  lf.TwistPlayHint,
		TwistReview:    lf.TwistReview,
		Mastery:        lf.Mastery,
		Applications:   apps,
		Bank:           quiz.Bank{Questions: questions, PassThreshold: lf.PassThreshold},
		PlayDamageGate: lf.PlayDamageGate,
	}, nil
}

func (pf predictFile) toPrompt() (PredictPrompt, error) {
	p := PredictPrompt{Prompt: pf.Prompt, CorrectID: pf.Correct}
	found := false
	for _, cf := range pf.Options {
		if cf.ID == pf.Correct {
			found = true
		}
		p.Options = append(p.Options, Category(cf))
	}
	if !found {
		return PredictPrompt{}, fmt.Errorf("correct id %q not among options", pf.Correct)
	}
	return p, nil
}
