package catalog

import "fmt"

func init() {
	if err := validateModules(seedModules); err != nil {
		panic(fmt.Sprintf("catalog: invalid seed content: %v", err))
	}
	std = buildIndex(seedModules)
}

// seedModules is the course content compiled into the binary.
var seedModules = []Module{
	{
		ID:      "europe",
		Title:   "Europe",
		Summary: "Capitals and rivers of Europe",
		Lessons: []Lesson{
			{
				ID:    "eu-capitals",
				Title: "Western European Capitals",
				Cards: []Card{
					{ID: "eu-cap-fr", Front: "Capital of France", Back: "Paris"},
					{ID: "eu-cap-es", Front: "Capital of Spain", Back: "Madrid"},
					{ID: "eu-cap-pt", Front: "Capital of Portugal", Back: "Lisbon"},
					{ID: "eu-cap-de", Front: "Capital of Germany", Back: "Berlin"},
					{ID: "eu-cap-nl", Front: "Capital of the Netherlands", Back: "Amsterdam", Notes: "Seat of government is The Hague."},
					{ID: "eu-cap-be", Front: "Capital of Belgium", Back: "Brussels"},
					{ID: "eu-cap-ch", Front: "Capital of Switzerland", Back: "Bern"},
					{ID: "eu-cap-at", Front: "Capital of Austria", Back: "Vienna"},
				},
				Questions: []Question{
					{
						ID: "eu-cap-q1", ConceptID: "iberia",
						Prompt:         "Which city is the capital of Portugal?",
						Options:        []string{"Porto", "Lisbon", "Madrid", "Seville"},
						CorrectAnswer:  "Lisbon",
						Explanation:    "Lisbon has been Portugal's capital since 1255.",
						RelatedCardIDs: []string{"eu-cap-pt"},
					},
					{
						ID: "eu-cap-q2", ConceptID: "iberia",
						Prompt:         "What is the capital of Spain?",
						CorrectAnswer:  "Madrid",
						Explanation:    "Madrid sits almost exactly at the geographic center of Spain.",
						RelatedCardIDs: []string{"eu-cap-es"},
					},
					{
						ID: "eu-cap-q3", ConceptID: "alpine",
						Prompt:         "Which city is the de facto capital of Switzerland?",
						Options:        []string{"Zurich", "Geneva", "Bern", "Basel"},
						CorrectAnswer:  "Bern",
						Explanation:    "Zurich is the largest city, but Bern is the federal city.",
						RelatedCardIDs: []string{"eu-cap-ch"},
					},
					{
						ID: "eu-cap-q4", ConceptID: "lowlands",
						Prompt:         "Which country's constitutional capital is Amsterdam?",
						CorrectAnswer:  "Netherlands",
						Explanation:    "Amsterdam is the capital even though parliament meets in The Hague.",
						RelatedCardIDs: []string{"eu-cap-nl"},
					},
					{
						ID: "eu-cap-q5", ConceptID: "alpine",
						Prompt:         "What is the capital of Austria?",
						CorrectAnswer:  "Vienna",
						RelatedCardIDs: []string{"eu-cap-at"},
					},
				},
			},
			{
				ID:    "eu-rivers",
				Title: "Rivers of Europe",
				Cards: []Card{
					{ID: "eu-riv-danube", Front: "Longest river entirely within Europe after the Volga", Back: "Danube"},
					{ID: "eu-riv-rhine", Front: "River flowing through Basel, Cologne, and Rotterdam", Back: "Rhine"},
					{ID: "eu-riv-seine", Front: "River of Paris", Back: "Seine"},
					{ID: "eu-riv-tagus", Front: "Longest river of the Iberian Peninsula", Back: "Tagus"},
					{ID: "eu-riv-po", Front: "Longest river in Italy", Back: "Po"},
					{ID: "eu-riv-thames", Front: "River of London", Back: "Thames"},
				},
				Questions: []Question{
					{
						ID: "eu-riv-q1", ConceptID: "rivers-west",
						Prompt:         "Which river flows through Paris?",
						Options:        []string{"Loire", "Rhone", "Seine", "Garonne"},
						CorrectAnswer:  "Seine",
						RelatedCardIDs: []string{"eu-riv-seine"},
					},
					{
						ID: "eu-riv-q2", ConceptID: "rivers-south",
						Prompt:         "What is the longest river in Italy?",
						CorrectAnswer:  "Po",
						Explanation:    "The Po runs 652 km across northern Italy.",
						RelatedCardIDs: []string{"eu-riv-po"},
					},
					{
						ID: "eu-riv-q3", ConceptID: "rivers-west",
						Prompt:         "Which river reaches the sea at Rotterdam?",
						CorrectAnswer:  "Rhine",
						RelatedCardIDs: []string{"eu-riv-rhine"},
					},
					{
						ID: "eu-riv-q4", ConceptID: "rivers-south",
						Prompt:         "The Tagus is the longest river of which peninsula?",
						Options:        []string{"Iberian", "Italian", "Balkan", "Scandinavian"},
						CorrectAnswer:  "Iberian",
						RelatedCardIDs: []string{"eu-riv-tagus"},
					},
				},
			},
		},
	},
	{
		ID:      "asia",
		Title:   "Asia",
		Summary: "Capitals and landmarks of Asia",
		Lessons: []Lesson{
			{
				ID:    "asia-capitals",
				Title: "East Asian Capitals",
				Cards: []Card{
					{ID: "as-cap-jp", Front: "Capital of Japan", Back: "Tokyo"},
					{ID: "as-cap-kr", Front: "Capital of South Korea", Back: "Seoul"},
					{ID: "as-cap-cn", Front: "Capital of China", Back: "Beijing"},
					{ID: "as-cap-mn", Front: "Capital of Mongolia", Back: "Ulaanbaatar"},
					{ID: "as-cap-vn", Front: "Capital of Vietnam", Back: "Hanoi"},
					{ID: "as-cap-th", Front: "Capital of Thailand", Back: "Bangkok"},
				},
				Questions: []Question{
					{
						ID: "as-cap-q1", ConceptID: "east-asia",
						Prompt:         "What is the capital of South Korea?",
						CorrectAnswer:  "Seoul",
						RelatedCardIDs: []string{"as-cap-kr"},
					},
					{
						ID: "as-cap-q2", ConceptID: "east-asia",
						Prompt:         "Which city is the capital of Mongolia?",
						Options:        []string{"Ulaanbaatar", "Astana", "Bishkek", "Tashkent"},
						CorrectAnswer:  "Ulaanbaatar",
						RelatedCardIDs: []string{"as-cap-mn"},
					},
					{
						ID: "as-cap-q3", ConceptID: "southeast-asia",
						Prompt:         "Hanoi is the capital of which country?",
						CorrectAnswer:  "Vietnam",
						Explanation:    "Ho Chi Minh City is larger, but Hanoi is the capital.",
						RelatedCardIDs: []string{"as-cap-vn"},
					},
					{
						ID: "as-cap-q4", ConceptID: "southeast-asia",
						Prompt:         "What is the capital of Thailand?",
						CorrectAnswer:  "Bangkok",
						RelatedCardIDs: []string{"as-cap-th"},
					},
				},
			},
			{
				ID:    "asia-landmarks",
				Title: "Asian Landmarks",
				Cards: []Card{
					{ID: "as-lm-fuji", Front: "Highest mountain in Japan", Back: "Mount Fuji"},
					{ID: "as-lm-everest", Front: "Highest mountain on Earth", Back: "Mount Everest"},
					{ID: "as-lm-mekong", Front: "River flowing through six Southeast Asian countries", Back: "Mekong"},
					{ID: "as-lm-gobi", Front: "Desert spanning northern China and southern Mongolia", Back: "Gobi"},
					{ID: "as-lm-baikal", Front: "Deepest freshwater lake in the world", Back: "Lake Baikal"},
				},
				Questions: []Question{
					{
						ID: "as-lm-q1", ConceptID: "mountains",
						Prompt:         "What is the highest mountain in Japan?",
						CorrectAnswer:  "Mount Fuji",
						RelatedCardIDs: []string{"as-lm-fuji"},
					},
					{
						ID: "as-lm-q2", ConceptID: "deserts",
						Prompt:         "Which desert spans northern China and southern Mongolia?",
						Options:        []string{"Gobi", "Karakum", "Thar", "Taklamakan"},
						CorrectAnswer:  "Gobi",
						RelatedCardIDs: []string{"as-lm-gobi"},
					},
					{
						ID: "as-lm-q3", ConceptID: "lakes",
						Prompt:         "What is the deepest freshwater lake in the world?",
						CorrectAnswer:  "Lake Baikal",
						Explanation:    "Baikal reaches 1,642 m and holds about a fifth of Earth's fresh surface water.",
						RelatedCardIDs: []string{"as-lm-baikal"},
					},
				},
			},
		},
	},
}
