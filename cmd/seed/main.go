// cmd/seed/main.go
package main

import (
	_ "embed"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go_4_trade_practice/internal/config"
	"go_4_trade_practice/internal/model"
	"go_4_trade_practice/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed content.yaml
var defaultContent []byte

type contentFile struct {
	Lessons []lessonFixture `yaml:"lessons"`
	Drills  []drillFixture  `yaml:"drills"`
}

type lessonFixture struct {
	LessonID  uint              `yaml:"lesson_id"`
	Title     string            `yaml:"title"`
	OrderNum  int               `yaml:"order_num"`
	Questions []questionFixture `yaml:"questions"`
}

type questionFixture struct {
	QuestionID    uint     `yaml:"question_id"`
	Kind          string   `yaml:"kind"`
	Prompt        string   `yaml:"prompt"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
}

type drillFixture struct {
	DrillID       uint             `yaml:"drill_id"`
	Title         string           `yaml:"title"`
	Description   string           `yaml:"description"`
	LevelRequired int              `yaml:"level_required"`
	Difficulty    string           `yaml:"difficulty"`
	Tags          []string         `yaml:"tags"`
	Hint1         *string          `yaml:"hint_1"`
	Hint2         *string          `yaml:"hint_2"`
	ChartData     []candleFixture  `yaml:"chart_data"`
	AnswerSet     answerSetFixture `yaml:"answer_set"`
	Explanation   []string         `yaml:"explanation"`
}

type candleFixture struct {
	Time  int64   `yaml:"time"`
	Open  float64 `yaml:"open"`
	High  float64 `yaml:"high"`
	Low   float64 `yaml:"low"`
	Close float64 `yaml:"close"`
}

type answerSetFixture struct {
	Zones []struct {
		Type      string   `yaml:"type"`
		PriceFrom float64  `yaml:"price_from"`
		PriceTo   float64  `yaml:"price_to"`
		Tolerance *float64 `yaml:"tolerance"`
	} `yaml:"zones"`
	Points []struct {
		Type         string   `yaml:"type"`
		Price        float64  `yaml:"price"`
		BarIndex     int      `yaml:"bar_index"`
		Direction    string   `yaml:"direction"`
		Tolerance    *float64 `yaml:"tolerance"`
		BarTolerance *int     `yaml:"bar_tolerance"`
	} `yaml:"points"`
	Description string `yaml:"description"`
}

// 使い方: go run ./cmd/seed [content.yaml]
// 引数が無ければ埋め込みのサンプルを投入する。同じIDの行は上書きされる。
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	raw := defaultContent
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to read content file %s: %v", os.Args[1], err)
		}
		raw = b
	}

	var content contentFile
	if err := yaml.Unmarshal(raw, &content); err != nil {
		log.Fatalf("Failed to parse content: %v", err)
	}

	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	lessons, questions, drills := toModels(content)
	err = db.Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		if len(lessons) > 0 {
			if err := upsert.Create(&lessons).Error; err != nil {
				return fmt.Errorf("upsert lessons: %w", err)
			}
		}
		if len(questions) > 0 {
			if err := upsert.Create(&questions).Error; err != nil {
				return fmt.Errorf("upsert questions: %w", err)
			}
		}
		if len(drills) > 0 {
			if err := upsert.Create(&drills).Error; err != nil {
				return fmt.Errorf("upsert drills: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	slog.Info("Seed completed",
		slog.Int("lessons", len(lessons)),
		slog.Int("questions", len(questions)),
		slog.Int("drills", len(drills)),
	)
}

func toModels(content contentFile) ([]model.Lesson, []model.Question, []model.Drill) {
	lessons := make([]model.Lesson, 0, len(content.Lessons))
	var questions []model.Question
	for _, l := range content.Lessons {
		lessons = append(lessons, model.Lesson{LessonID: l.LessonID, Title: l.Title, OrderNum: l.OrderNum})
		for i, q := range l.Questions {
			questions = append(questions, model.Question{
				QuestionID:    q.QuestionID,
				LessonID:      l.LessonID,
				Kind:          model.QuestionKind(q.Kind),
				Prompt:        q.Prompt,
				Options:       datatypes.NewJSONSlice(q.Options),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				OrderNum:      i + 1,
			})
		}
	}

	drills := make([]model.Drill, 0, len(content.Drills))
	for _, d := range content.Drills {
		candles := make([]model.Candle, 0, len(d.ChartData))
		for _, c := range d.ChartData {
			candles = append(candles, model.Candle{Time: c.Time, Open: c.Open, High: c.High, Low: c.Low, Close: c.Close})
		}

		var answer model.AnswerSet
		answer.Description = d.AnswerSet.Description
		for _, z := range d.AnswerSet.Zones {
			answer.Zones = append(answer.Zones, model.AnswerZone{
				Type:      model.ZoneType(z.Type),
				PriceFrom: z.PriceFrom,
				PriceTo:   z.PriceTo,
				Tolerance: z.Tolerance,
			})
		}
		for _, p := range d.AnswerSet.Points {
			answer.Points = append(answer.Points, model.AnswerPoint{
				Type:         model.PointType(p.Type),
				Price:        p.Price,
				BarIndex:     p.BarIndex,
				Direction:    model.Direction(p.Direction),
				Tolerance:    p.Tolerance,
				BarTolerance: p.BarTolerance,
			})
		}

		drills = append(drills, model.Drill{
			DrillID:       d.DrillID,
			Title:         d.Title,
			Description:   d.Description,
			LevelRequired: d.LevelRequired,
			Difficulty:    d.Difficulty,
			Tags:          datatypes.NewJSONSlice(d.Tags),
			ChartData:     datatypes.NewJSONSlice(candles),
			AnswerSet:     datatypes.NewJSONType(answer),
			Hint1:         d.Hint1,
			Hint2:         d.Hint2,
			Explanation:   datatypes.NewJSONSlice(d.Explanation),
		})
	}
	return lessons, questions, drills
}
