// Command health-intel runs the nutrition engine against a JSON snapshot of
// tracking data and prints the derived numbers. It is a thin driver: all
// logic lives in the root package, this binary only loads input and renders
// output.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	healthintel "lg/health-intel"
)

const version = "1.0.0"

// snapshot is the on-disk input format: the profile plus raw histories and
// the user's goal selection, as exported by the tracking frontend.
type snapshot struct {
	Profile      healthintel.UserProfile   `json:"profile"`
	Weights      []healthintel.WeightSample `json:"weights"`
	Meals        []healthintel.MealSample   `json:"meals"`
	Goal         healthintel.Goal           `json:"goal"`
	WeeklyRateKG float64                    `json:"weekly_rate_kg,omitempty"`
}

var dataPath string

func main() {
	// .env may carry HEALTH_INTEL_DATA; absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Printf("[cli] loaded environment from .env")
	}

	root := &cobra.Command{
		Use:           "health-intel",
		Short:         "Nutrition and health intelligence engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", os.Getenv("HEALTH_INTEL_DATA"),
		"path to the JSON tracking snapshot")

	root.AddCommand(reportCmd(), mealplanCmd(), foodsCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("[cli] %v", err)
	}
}

func loadSnapshot() (snapshot, error) {
	var snap snapshot
	if dataPath == "" {
		return snap, fmt.Errorf("no data file: pass --data or set HEALTH_INTEL_DATA")
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return snap, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Goal == "" {
		snap.Goal = healthintel.GoalMaintain
	}
	return snap, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Full intelligence report: target, trend, anomaly, prediction, streak, advice",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			now := time.Now()
			hist := healthintel.History{Weights: snap.Weights, Meals: snap.Meals}

			goal := healthintel.OptimalCalorieTarget(
				snap.Profile, snap.Goal, healthintel.WeeklyRateKG(snap.WeeklyRateKG), hist, now)
			if goal.Target == 0 {
				return fmt.Errorf("no weight samples in snapshot, cannot compute a target")
			}

			report := struct {
				Goal       healthintel.CalorieGoal  `json:"goal"`
				Trend      healthintel.TrendResult  `json:"trend"`
				Anomaly    *healthintel.Anomaly     `json:"anomaly,omitempty"`
				Prediction *healthintel.Prediction  `json:"prediction,omitempty"`
				Streak     int                      `json:"streak_days"`
				Advice     []healthintel.Suggestion `json:"advice"`
			}{
				Goal:    goal,
				Trend:   healthintel.AnalyzeTrend(snap.Weights),
				Anomaly: healthintel.DetectAnomaly(snap.Weights),
				Streak:  healthintel.TrackingStreak(snap.Weights, snap.Meals, now),
			}

			current, target := latestAndTarget(snap)
			if snap.Profile.TargetWeightKG != nil {
				report.Prediction = healthintel.PredictGoalDate(snap.Weights, *snap.Profile.TargetWeightKG, now)
			}
			report.Advice = healthintel.Advice(healthintel.DayStats{
				TodayCalories:   caloriesToday(snap.Meals, now),
				TargetCalories:  goal.Target,
				CurrentWeightKG: current,
				TargetWeightKG:  target,
				BMI:             healthintel.BMI(current, snap.Profile.HeightCM),
				Streak:          report.Streak,
			}, snap.Weights, snap.Meals, now)

			return printJSON(report)
		},
	}
}

// latestAndTarget extracts the most recent weight and the goal weight,
// defaulting the goal to the current weight when the profile has none.
func latestAndTarget(snap snapshot) (current, target float64) {
	var latest *healthintel.WeightSample
	for i := range snap.Weights {
		w := &snap.Weights[i]
		if latest == nil || w.Date.After(latest.Date.Time) {
			latest = w
		}
	}
	if latest != nil {
		current = latest.WeightKG
	}
	target = current
	if snap.Profile.TargetWeightKG != nil {
		target = *snap.Profile.TargetWeightKG
	}
	return current, target
}

func caloriesToday(meals []healthintel.MealSample, now time.Time) int {
	today := healthintel.DateOf(now).Format("2006-01-02")
	total := 0
	for _, m := range meals {
		if m.Date.Format("2006-01-02") == today {
			total += m.Calories
		}
	}
	return total
}

func mealplanCmd() *cobra.Command {
	var (
		slot     string
		mealsPer int
		calories int
	)
	cmd := &cobra.Command{
		Use:   "mealplan",
		Short: "Generate meal compositions for a calorie target",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot()
			if err != nil {
				return err
			}
			target := calories
			if target == 0 {
				goal := healthintel.OptimalCalorieTarget(snap.Profile, snap.Goal,
					healthintel.WeeklyRateKG(snap.WeeklyRateKG),
					healthintel.History{Weights: snap.Weights, Meals: snap.Meals}, time.Now())
				if goal.Target == 0 {
					return fmt.Errorf("no weight samples and no --calories given")
				}
				target = goal.Target
			}

			cat := healthintel.DefaultCatalog()
			if slot != "" {
				meal := cat.GenerateSlotMeal(target, snap.Goal, healthintel.MealSlot(slot))
				log.Printf("[mealplan] %s", healthintel.MealSummary(meal))
				return printJSON(meal)
			}
			meals := cat.GenerateDayMeals(target, snap.Goal, mealsPer)
			for _, m := range meals {
				log.Printf("[mealplan] %s", healthintel.MealSummary(m))
			}
			return printJSON(meals)
		},
	}
	cmd.Flags().StringVar(&slot, "slot", "", "single slot: breakfast, lunch, dinner, or snack")
	cmd.Flags().IntVar(&mealsPer, "meals", 2, "whole-day mode: number of meals (1 or 2)")
	cmd.Flags().IntVar(&calories, "calories", 0, "override the computed daily calorie target")
	return cmd
}

func foodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "foods <query>",
		Short: "Search the food catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := healthintel.DefaultCatalog().Search(args[0])
			if len(results) == 0 {
				return fmt.Errorf("no foods matching %q", args[0])
			}
			return printJSON(results)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("health-intel " + version)
		},
	}
}
