package services

import (
	"fmt"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

// DietCatalogSize is the number of built-in plans.
const DietCatalogSize = 30

var dietVariantCategories = []string{
	"Weight Loss", "Muscle Gain", "Keto", "Paleo", "Vegan",
	"Gluten-Free", "DASH", "Mediterranean", "Anti-Aging",
}

type dietMeals struct {
	breakfast   string
	lunch       string
	dinner      string
	snack       string
	instruction string
}

func repeatDietDays(meals dietMeals) []models.DietDay {
	days := make([]models.DietDay, 0, models.DietPlanDays)
	for day := 1; day <= models.DietPlanDays; day++ {
		days = append(days, models.DietDay{
			Day:         day,
			Breakfast:   meals.breakfast,
			Lunch:       meals.lunch,
			Dinner:      meals.dinner,
			Snack:       meals.snack,
			Instruction: meals.instruction,
		})
	}
	return days
}

// BuiltinDietPlans returns the seed catalog in a stable order.
func BuiltinDietPlans() []models.DietPlan {
	plans := []models.DietPlan{
		{
			Name:        "Heart-Healthy Low Sodium Diet",
			Description: "A clinical diet focused on reducing blood pressure and improving cardiovascular health by limiting sodium and saturated fats.",
			Category:    "Heart Health",
			Benefits:    []string{"Lower Blood Pressure", "Reduced Cholesterol", "Better Heart Function"},
			Pros:        []string{"Clinically proven for hypertension", "Rich in fiber and minerals"},
			Cons:        []string{"Requires strictly avoiding processed foods", "Lower salt taste may take time to adapt"},
			Days: repeatDietDays(dietMeals{
				breakfast:   "Oatmeal with fresh berries and flaxseeds",
				lunch:       "Grilled chicken salad with olive oil and lemon dressing",
				dinner:      "Baked salmon with steamed broccoli and quinoa",
				snack:       "Unsalted almonds or a piece of fruit",
				instruction: "Do not add table salt. Use herbs and spices for flavor.",
			}),
		},
		{
			Name:        "Standard Diabetic Control Diet",
			Description: "Designed to maintain stable blood glucose levels using low-glycemic index foods and frequent small meals.",
			Category:    "Diabetic",
			Benefits:    []string{"Blood Sugar Stability", "Reduced Insulin Spikes", "Sustained Energy"},
			Pros:        []string{"Prevents sugar crashes", "Highly structured"},
			Cons:        []string{"Requires precise portion control", "Zero white sugar allowed"},
			Days: repeatDietDays(dietMeals{
				breakfast:   "Scrambled eggs with spinach and whole-grain toast",
				lunch:       "Lentil soup (Daal) with a small portion of brown rice",
				dinner:      "Grilled fish with a large green salad",
				snack:       "Low-fat Greek yogurt with nuts",
				instruction: "Monitor sugar levels 2 hours after lunch.",
			}),
		},
		{
			Name:        "Kidney-Friendly Renal Diet",
			Description: "Limits potassium, phosphorus and sodium to reduce the workload on the kidneys.",
			Category:    "Renal",
			Benefits:    []string{"Reduced Kidney Strain", "Balanced Electrolytes", "Less Fluid Retention"},
			Pros:        []string{"Protects remaining kidney function", "Clear food lists"},
			Cons:        []string{"Limits many fruits and vegetables", "Needs regular lab monitoring"},
			Days: repeatDietDays(dietMeals{
				breakfast:   "Egg white omelette with bell peppers and white toast",
				lunch:       "Chicken breast with white rice and boiled cabbage",
				dinner:      "Baked fish with cauliflower mash",
				snack:       "Apple slices or unsalted crackers",
				instruction: "Keep fluids within the limit your doctor gave you.",
			}),
		},
		{
			Name:        "Liver Support Detox Plan",
			Description: "Whole-food plan that avoids alcohol, fried food and added sugar to support liver recovery.",
			Category:    "Liver Health",
			Benefits:    []string{"Lower Liver Enzymes", "Reduced Fatty Deposits", "Better Digestion"},
			Pros:        []string{"High in antioxidants", "Easy to follow at home"},
			Cons:        []string{"No alcohol or fried food at all", "Slow visible results"},
			Days: repeatDietDays(dietMeals{
				breakfast:   "Porridge with walnuts and a boiled egg",
				lunch:       "Mixed vegetable soup with whole-wheat roti",
				dinner:      "Grilled chicken with sauteed spinach and beetroot",
				snack:       "Green tea with a handful of berries",
				instruction: "Avoid all fried and packaged foods.",
			}),
		},
	}

	for _, category := range dietVariantCategories {
		plans = append(plans,
			models.DietPlan{
				Name:        category + " Plan Alpha",
				Description: fmt.Sprintf("A specialized %s diet for beginners focusing on core principles and easy meals.", category),
				Category:    category,
				Benefits:    []string{"Improved " + category + " balance", "Overall wellness"},
				Pros:        []string{"Simple", "Effective"},
				Cons:        []string{"Specific restrictions"},
				Days: repeatDietDays(dietMeals{
					breakfast:   "Healthy " + category + " Breakfast",
					lunch:       "Nutritious " + category + " Lunch",
					dinner:      "Light " + category + " Dinner",
					snack:       "Energy " + category + " Snack",
					instruction: "Consistency is key.",
				}),
			},
			models.DietPlan{
				Name:        category + " Advanced System",
				Description: fmt.Sprintf("An advanced 10-day intensive %s regimen for maximum clinical results.", category),
				Category:    category,
				Benefits:    []string{"Maximum performance", "Deep detoxification"},
				Pros:        []string{"Highest efficiency", "Rapid change"},
				Cons:        []string{"Intense", "Requires prep"},
				Days: repeatDietDays(dietMeals{
					breakfast:   "Intense " + category + " Morning Fuel",
					lunch:       "Advanced " + category + " Power Bowl",
					dinner:      "Muscle-Repair " + category + " Meal",
					snack:       "High-Density " + category + " Nutrients",
					instruction: "No cheats allowed.",
				}),
			},
			models.DietPlan{
				Name:        category + " Recovery Mode",
				Description: fmt.Sprintf("Gentle %s approach for those recovering from illness or physical stress.", category),
				Category:    category,
				Benefits:    []string{"Healing", "Gentle metabolism"},
				Pros:        []string{"Easy on digestion", "Comforting"},
				Cons:        []string{"Slower progress"},
				Days: repeatDietDays(dietMeals{
					breakfast:   "Soothing " + category + " Warmth",
					lunch:       "Easy-Digest " + category + " Protein",
					dinner:      "Nourishing " + category + " Stew",
					snack:       "Hydrating " + category + " Boost",
					instruction: "Listen to your body.",
				}),
			},
		)
	}

	if len(plans) > DietCatalogSize {
		plans = plans[:DietCatalogSize]
	}
	return plans
}
