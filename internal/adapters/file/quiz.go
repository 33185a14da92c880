package file

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/gipersonic/miet/pkg/domain"
)

// QuizSource implements ports.QuizSource over a YAML file mapping quiz
// keys to question lists. Like the catalog, the file is re-read per
// lookup.
type QuizSource struct {
	path string
}

// NewQuizSource creates a source reading quiz definitions from path.
func NewQuizSource(path string) *QuizSource {
	return &QuizSource{path: path}
}

// Questions returns the question list stored under key.
func (q *QuizSource) Questions(ctx context.Context, key string) ([]domain.Question, error) {
	data, err := os.ReadFile(q.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz file: %w", err)
	}

	var raw map[string][]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz file: %w", err)
	}

	records, ok := raw[key]
	if !ok {
		return nil, domain.ErrQuizUnavailable
	}

	questions := make([]domain.Question, 0, len(records))
	for i, record := range records {
		var question domain.Question
		if err := mapstructure.Decode(record, &question); err != nil {
			return nil, fmt.Errorf("invalid question %d under %q: %w", i+1, key, err)
		}
		questions = append(questions, question)
	}
	return questions, nil
}
