package template

import (
	"context"
	"errors"
	"fmt"
)

// ErrValidation marks an input the caller can fix.
var ErrValidation = errors.New("validation failed")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the template for the given key, or ErrNotFound.
func (s *Service) Resolve(ctx context.Context, mainDisease, sheetName string) (*Template, error) {
	if mainDisease == "" || sheetName == "" {
		return nil, fmt.Errorf("%w: main_disease and sheet_name are required", ErrValidation)
	}
	return s.repo.GetByKey(ctx, mainDisease, sheetName)
}

// Apply copies the template guidance for the given key into form. When no
// template matches, form is left untouched and Apply reports false; a partial
// selection never clears what the user already entered.
func (s *Service) Apply(ctx context.Context, mainDisease, sheetName string, form *Guidance) (bool, error) {
	if mainDisease == "" || sheetName == "" {
		return false, nil
	}
	t, err := s.repo.GetByKey(ctx, mainDisease, sheetName)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	*form = t.Guidance
	return true, nil
}

// Upsert creates or replaces the template for its (main disease, sheet name)
// key. The key is the identity; guidance fields are overwritten wholesale.
func (s *Service) Upsert(ctx context.Context, t *Template) error {
	if t.MainDisease == "" {
		return fmt.Errorf("%w: main_disease is required", ErrValidation)
	}
	if t.SheetName == "" {
		return fmt.Errorf("%w: sheet_name is required", ErrValidation)
	}
	return s.repo.Upsert(ctx, t)
}

func (s *Service) List(ctx context.Context) ([]*Template, error) {
	return s.repo.List(ctx)
}

// SeedDefaults inserts the stock guidance templates when the table is empty.
func (s *Service) SeedDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count templates: %w", err)
	}
	if n > 0 {
		return nil
	}
	for i := range defaultTemplates {
		t := defaultTemplates[i]
		if err := s.repo.Upsert(ctx, &t); err != nil {
			return fmt.Errorf("seed template %s/%s: %w", t.MainDisease, t.SheetName, err)
		}
	}
	return nil
}

var defaultTemplates = []Template{
	{
		MainDisease: "糖尿病", SheetName: "HbAc８％",
		Guidance: Guidance{
			Goal1:                "HbA1ｃを低血糖に注意して下げる",
			Goal2:                "ストレッチを中心とした運動/間食の制限/糖質の制限",
			Diet:                 "・食事量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ストレッチ運動", ExerciseTime: "10分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "息切れしない程度", DailyActivity: "ストレッチ運動を主に行う", Nonsmoker: true,
			Other1: "睡眠の確保１日７時間", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "糖尿病", SheetName: "HbAc７％",
		Guidance: Guidance{
			Goal1:                "HbA1ｃ７％を目標/体重を当初の－３Kgとする",
			Goal2:                "１日８０００歩以上の歩行/間食の制限/糖質の制限",
			Diet:                 "・食事量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "ほぼ毎日",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日8000歩以上", Nonsmoker: true,
			Other1: "睡眠の確保１日７時間", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "糖尿病", SheetName: "HbAc６％",
		Guidance: Guidance{
			Goal1:                "HbA1ｃを正常化",
			Goal2:                "１日５０００歩以上の歩行/間食の制限/糖質の制限",
			Diet:                 "・食事量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に５回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日5000歩以上", Nonsmoker: true,
			Other1: "睡眠の確保１日７時間", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "高血圧", SheetName: "血圧130-80以下",
		Guidance: Guidance{
			Goal1:                "家庭血圧が測定でき、朝と就寝前のいずれかで130/80mmHg以下",
			Goal2:                "塩分を控えた食事と運動習慣を目標にする",
			Diet:                 "・塩分量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日5000歩以上", Nonsmoker: true,
			Other1: "睡眠の確保１日７時間", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "高血圧", SheetName: "血圧140-90以下",
		Guidance: Guidance{
			Goal1:                "家庭血圧が測定でき、朝と就寝前のいずれかで140/90mmHg以下",
			Goal2:                "塩分を控えた食事と運動習慣を目標にする",
			Diet:                 "・塩分量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ストレッチ運動", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "ストレッチ運動を主に行う", Nonsmoker: true,
			Other1: "睡眠の確保１日７時間", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "脂質異常症", SheetName: "LDL120以下",
		Guidance: Guidance{
			Goal1:                "LDLコレステロール＜120/TG＜150/HDL≧40",
			Goal2:                "毎日の有酸素運動と食習慣の改善",
			Diet:                 "・食事摂取量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日5000歩以上", Nonsmoker: true,
			Other1: "飲酒の制限、肥満度の改善", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "脂質異常症", SheetName: "LDL100以下",
		Guidance: Guidance{
			Goal1:                "LDLコレステロール＜100/TG＜150/HDL≧40",
			Goal2:                "毎日の有酸素運動と食習慣の改善",
			Diet:                 "・食事摂取量を適正にする\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日5000歩以上", Nonsmoker: true,
			Other1: "飲酒の制限、肥満度の改善", Other2: "家庭での毎日の歩数の測定",
		},
	},
	{
		MainDisease: "脂質異常症", SheetName: "LDL70以下",
		Guidance: Guidance{
			Goal1:                "LDLコレステロール＜100/TG＜150/HDL≧40",
			Goal2:                "毎日の有酸素運動と食習慣の改善",
			Diet:                 "・脂肪の多い食品や甘い物を控える\n・食物繊維の摂取量を増やす\n・ゆっくり食べる\n・間食を減らす",
			ExercisePrescription: "ウォーキング", ExerciseTime: "30分以上", ExerciseFrequency: "１週間に２回以上",
			ExerciseIntensity: "少し汗をかく程度", DailyActivity: "1日5000歩以上", Nonsmoker: true,
			Other1: "飲酒の制限、肥満度の改善", Other2: "家庭での毎日の歩数の測定",
		},
	},
}
