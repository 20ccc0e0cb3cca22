// Package apidoc is the API's self-description: every route carries a
// human-readable detail line, a clickable example request and a result
// example. The root endpoint renders the whole registry as a directory,
// and handlers fall back to these bodies when a request arrives without
// its required params or with the wrong verb.
package apidoc

import "fmt"

type Endpoint struct {
	// Title is the display name used as the key in the root directory.
	Title string
	// Name is the route segment, e.g. "get_q_groups".
	Name string
	// Detail describes the params the endpoint expects.
	Detail string
	// ExampleQuery is a ready-to-click query string, empty for
	// endpoints that take no params.
	ExampleQuery string
	// HasBareExample marks endpoints that also advertise a usable
	// no-params URL next to the parameterized one.
	HasBareExample bool
	// ResultExample is shown when the store has no data yet, or inside
	// usage bodies. GET endpoints only.
	ResultExample any
	// ExamplePost is the JSON body a client should send. POST only.
	ExamplePost any
}

// ExampleBody is the empty-store response: the caller sees what a real
// result would look like instead of an empty list.
func (e *Endpoint) ExampleBody() map[string]any {
	return map[string]any{"result example": e.ResultExample}
}

// UsageBody documents a parameterized GET endpoint when the request
// came in without its params. baseURL is the endpoint's own URL
// without a query string.
func (e *Endpoint) UsageBody(baseURL string) map[string]any {
	body := map[string]any{
		"detail":                         e.Detail,
		"example of GET URL with params": baseURL + e.ExampleQuery,
		"result example":                 e.ResultExample,
	}
	if e.HasBareExample {
		body["example of GET URL without any params"] = baseURL
	}
	return body
}

// MethodHintBody answers a GET sent to a POST route: the detail line
// plus the JSON body the client should have posted.
func (e *Endpoint) MethodHintBody() map[string]any {
	return map[string]any{
		"detail":               e.Detail,
		"example of POST data": e.ExamplePost,
	}
}

func FindGet(name string) *Endpoint { return find(GetEndpoints, name) }

func FindPost(name string) *Endpoint { return find(PostEndpoints, name) }

func find(endpoints []Endpoint, name string) *Endpoint {
	for i := range endpoints {
		if endpoints[i].Name == name {
			return &endpoints[i]
		}
	}
	return nil
}

// Directory is the root listing: the admin URL plus one link per API,
// keyed by the endpoint titles.
func Directory(baseURL string) map[string]any {
	getAPIs := make(map[string]any, len(GetEndpoints))
	for _, e := range GetEndpoints {
		getAPIs[e.Title] = fmt.Sprintf("%s/%s", baseURL, e.Name)
	}
	postAPIs := make(map[string]any, len(PostEndpoints))
	for _, e := range PostEndpoints {
		postAPIs[e.Title] = fmt.Sprintf("%s/%s", baseURL, e.Name)
	}
	return map[string]any{
		"ADMIN Section": baseURL + "/admin",
		"APIs GET:":     getAPIs,
		"APIs POST:":    postAPIs,
	}
}

var GetEndpoints = []Endpoint{
	{
		Title: "All Questions Groups:",
		Name:  "get_q_groups",
		ResultExample: []any{
			map[string]any{
				"id":                 1,
				"group_name":         "Group1",
				"group_title":        "Awesome group",
				"group_description":  "Awesome description",
				"group_time_to_pass": "5 questions, ~5 minutes",
				"group_frequency":    "every week",
				"max_score":          25,
				"result_types":       map[string]any{"good": []int{0, 13}, "bad": []int{14, 25}},
			},
			map[string]any{
				"id":                 2,
				"group_name":         "Group2",
				"group_title":        "Another group",
				"group_description":  "Another description",
				"group_time_to_pass": "10 questions, ~10 minutes",
				"group_frequency":    "every month",
				"max_score":          50,
				"result_types":       map[string]any{"bad": []int{0, 10}, "normal": []int{11, 30}, "good": []int{31, 50}},
			},
		},
	},
	{
		Title: "All Questions:",
		Name:  "get_questions",
		ResultExample: []any{
			map[string]any{"id": 1, "question_text": "Is this question awesome?", "order": 1, "questions_group": 1},
			map[string]any{"id": 2, "question_text": "Maybe thi one is awesome too?", "order": 2, "questions_group": 1},
		},
	},
	{
		Title: "All Choices:",
		Name:  "get_choices",
		ResultExample: []any{
			map[string]any{"id": 1, "choice_text": "Yes, it's awesome!", "order": 1, "question": []int{1, 2}},
			map[string]any{"id": 2, "choice_text": "No, it's even better!", "order": 2, "question": []int{1, 2}},
		},
	},
	{
		Title:        "All Questions & Choices by Question Group:",
		Name:         "get_qc_by_q_group_name",
		Detail:       "GET data should contains 1 string value: questions_group. You can try with Example - click on the link in it",
		ExampleQuery: "?questions_group=Group1",
		ResultExample: []any{
			map[string]any{
				"group_id": 1,
				"data_list": []any{
					map[string]any{
						"question_text": "Is this question awesome?",
						"group_id":      1,
						"question_id":   1,
						"choices": []any{
							map[string]any{"choice_id": 1, "choice_text": "Yes, it's awesome!"},
							map[string]any{"choice_id": 2, "choice_text": "No, it's even better!"},
						},
					},
					map[string]any{
						"question_text": "Maybe thi one is awesome too?",
						"group_id":      1,
						"question_id":   2,
						"choices": []any{
							map[string]any{"choice_id": 1, "choice_text": "Yes, it's awesome!"},
							map[string]any{"choice_id": 2, "choice_text": "No, it's even better!"},
						},
					},
				},
			},
		},
	},
	{
		Title: "All Users:",
		Name:  "get_users",
		ResultExample: []any{
			map[string]any{"id": 1, "name": "John Doe", "email": "some-awesome-email@test.test"},
			map[string]any{"id": 2, "name": "Merry Popins", "email": "another-awesome-email@test.test"},
		},
	},
	{
		Title:        "Get One User by email",
		Name:         "get_one_user",
		Detail:       "GET data should contains 1 string value: email. You can try with Example - click on the link in it",
		ExampleQuery: "?email=some-awesome-email@test.test",
		ResultExample: []any{
			map[string]any{"id": 1, "name": "John Doe", "email": "some-awesome-email@test.test"},
		},
	},
	{
		Title: "All Users Answers:",
		Name:  "get_users_answers",
		ResultExample: []any{
			map[string]any{"id": 1, "created_at": "2025-02-09T09:27:10.223088Z", "user": 1, "question": 1, "answer": 1, "user_completed_poll": 1},
			map[string]any{"id": 1, "created_at": "2025-02-09T09:28:11.223088Z", "user": 1, "question": 2, "answer": 2, "user_completed_poll": 1},
		},
	},
	{
		Title: "All Users Completed Polls:",
		Name:  "get_users_cps",
		ResultExample: []any{
			map[string]any{"id": 1, "completed_at": "2025-02-09T09:26:57.690978Z", "user": 1, "questions_group": 1},
			map[string]any{"id": 2, "completed_at": "2025-02-09T10:27:01.690978Z", "user": 1, "questions_group": 2},
		},
	},
	{
		Title:        "Get One User Complited Poll results by Questions Group:",
		Name:         "get_user_cp_result_by_q_group_name",
		Detail:       "GET data should contains 2 values: user_id (int), questions_group_name (string). You can try with Example - click on the link in it",
		ExampleQuery: "?user_id=1&questions_group_name=Group1",
		ResultExample: []any{
			map[string]any{"total_score": 15, "total_cat": "good", "total_prc": 55},
		},
	},
	{
		Title: "All Journeys with Countries",
		Name:  "get_journeys_with_countries",
		ResultExample: []any{
			map[string]any{
				"journey_id":   1,
				"user_id":      1,
				"journey_type": "just for weekend",
				"title":        "Trip to Paris & London",
				"dates":        "2018-05-01 to 2018-05-03",
				"description":  "just to taste fried frogs and pizza",
				"link":         "www.awesome-europe-trip.com",
				"countries":    []string{"🇫🇷", "🇬🇧"},
			},
			map[string]any{
				"journey_id":   2,
				"user_id":      1,
				"journey_type": "just for weekend",
				"title":        "Trip to Tokio & Pekin",
				"dates":        "2008-05-01 to 2008-05-03",
				"description":  "just to taste sushi and wok",
				"link":         "www.awesome-asia-trip.com",
				"countries":    []string{"🇯🇵", "🇨🇳"},
			},
		},
	},
	{
		Title:        "All Entries",
		Name:         "get_entries",
		Detail:       "GET data should contains 1 values: need_full_data (bool). You can try with Example - click on the link in it",
		ExampleQuery: "?need_full_data=false",
		ResultExample: []any{
			map[string]any{
				"id":           1,
				"user_id":      1,
				"title":        "First Entry",
				"date_time":    "2025-02-13T20:20:56Z",
				"description":  "about starting my Diary",
				"text":         "Hello, Diary! I write you my first entry. Don't know what to write about but I like the whole process of it!",
				"cat_name":     "Notes",
				"image_base64": "iVBORw0KGgoAAAANSUhE... (end cutted because of very long length)",
				"audio_base64": "//uQxAAAAAAAAAAAAAAA... (end cutted because of very long length)",
				"tags":         []string{"note"},
			},
			map[string]any{
				"id":           2,
				"user_id":      1,
				"title":        "How I spend my summer vacations",
				"date_time":    "2025-02-13T20:24:10Z",
				"description":  "it's a long story about what we did last summer",
				"text":         "So I should tell a very long story about it. I will start from the beginning...",
				"cat_name":     "Long stories",
				"image_base64": "AAABAA0AMDAQAAEABABo... (end cutted because of very long length)",
				"audio_base64": "//uQxAAAAAAAAAAAAAAA... (end cutted because of very long length)",
				"tags":         []string{"long-read", "scary"},
			},
		},
	},
	{
		Title:        "Get Entry by id:",
		Name:         "get_entry_by_id",
		Detail:       "GET data should contains 2 values: entry_id (int), need_full_data (bool). You can try with Example - click on the link in it",
		ExampleQuery: "?entry_id=1&need_full_data=false",
		ResultExample: map[string]any{
			"id":           1,
			"title":        "First Entry",
			"date":         "2025-02-13T20:20:56Z",
			"description":  "about starting my Diary",
			"text":         "Hello, Diary! I write you my first entry. Don't know what to write about but I like the whole process of it!",
			"cat_name":     "Notes",
			"image_base64": "iVBORw0KGgoAAAANSUhE... (end cutted because of very long length)",
			"audio_base64": "//uQxAAAAAAAAAAAAAAA... (end cutted because of very long length)",
			"tags":         []string{"note"},
		},
	},
	{
		Title:        "Get Entries by category:",
		Name:         "get_entries_by_cat_name",
		Detail:       "GET data should contains 1 value: need_full_data (bool). Also GET data can contain 1 value: category_name (str). You can try with Example - click on the link in it",
		ExampleQuery: "?category_name=Notes&need_full_data=false",
		ResultExample: []any{
			map[string]any{
				"category": "Notes",
				"entries": []any{
					map[string]any{
						"id":           1,
						"user_id":      1,
						"title":        "First Entry",
						"date_time":    "2025-02-13T20:20:56Z",
						"description":  "about starting my Diary",
						"text":         "Hello, Diary! I write you my first entry. Don't know what to write about but I like the whole process of it!",
						"cat_name":     "Notes",
						"image_base64": "iVBORw0KGgoAAAAN... (end cutted because of very long length)",
						"audio_base64": "SUQzBAAAAAAAIlRT... (end cutted because of very long length)",
						"tags":         []string{"note"},
					},
				},
			},
			map[string]any{
				"category": "Long stories",
				"entries": []any{
					map[string]any{
						"id":           2,
						"user_id":      1,
						"title":        "How I spend my summer vacations",
						"date_time":    "2025-02-13T20:24:10Z",
						"description":  "it's a long story about what we did last summer",
						"text":         "So I should tell a very long story about it. I will start from the beginning...",
						"cat_name":     "Long stories",
						"image_base64": "iVBORw0KGgoAAAAN... (end cutted because of very long length)",
						"audio_base64": "SUQzBAAAAAAAIlRT... (end cutted because of very long length)",
						"tags":         []string{"long-read", "scary"},
					},
				},
			},
		},
	},
	{
		Title: "All Timelines:",
		Name:  "get_timelines",
		ResultExample: []any{
			map[string]any{"id": 1, "start_dt": "2025-02-08T15:10:12.808766Z", "description": "timeline of User1", "user": 1},
			map[string]any{"id": 2, "start_dt": "2025-02-08T15:10:12.808766Z", "description": "timeline of User2", "user": 1},
		},
	},
	{
		Title: "All Timelines Events Categories:",
		Name:  "get_tl_events_categories",
		ResultExample: []any{
			map[string]any{"id": 1, "category_name": "App Achievements"},
			map[string]any{"id": 2, "category_name": "Good Events"},
		},
	},
	{
		Title: "All Timelines Events Templates:",
		Name:  "get_tl_events_templates",
		ResultExample: []any{
			map[string]any{"id": 1, "event": "Registration in App", "event_category": 1},
			map[string]any{"id": 2, "event": "Some Good Event", "event_category": 2},
		},
	},
	{
		Title:          "All Timeline Event Categories with Templates:",
		Name:           "get_tl_event_cats_with_templates",
		Detail:         "GET data can be WITHOUT any params OR it can contains 1 value: event_id (int). You can try with 2 Examples - click on the first OR second link in it",
		ExampleQuery:   "?event_id=1",
		HasBareExample: true,
		ResultExample: []any{
			map[string]any{
				"category_name":   "App Achievements",
				"id":              1,
				"event_templates": []string{"Registration in App", "Passed Group1 poll"},
			},
			map[string]any{
				"category_name":   "Some other Category",
				"id":              2,
				"event_templates": []string{"Awesome Event", "Good Event", "Bad Event"},
			},
		},
	},
	{
		Title: "All Timeline Events:",
		Name:  "get_timelines_events",
		ResultExample: []any{
			map[string]any{
				"id":             1,
				"created_at":     "2025-02-09T18:53:09Z",
				"event":          "Registration in app",
				"link":           "link to photo",
				"description":    "someone registred in your App",
				"emotion":        "😐",
				"user":           1,
				"timeline":       1,
				"category":       1,
				"event_template": 1,
			},
			map[string]any{
				"id":             2,
				"created_at":     "2025-02-09T18:53:39Z",
				"event":          "Some Good Event",
				"link":           "link to photo1",
				"description":    "test2",
				"emotion":        "🙂",
				"user":           1,
				"timeline":       1,
				"category":       2,
				"event_template": 2,
			},
		},
	},
	{
		Title:        "All Timeline Events by user_id:",
		Name:         "get_tl_events_by_user",
		Detail:       "GET data should contains 1 values: user_id (int). You can try with Example - click on the link in it",
		ExampleQuery: "?user_id=1",
		ResultExample: map[string]any{
			"user_id": 1,
			"timeline_events": []any{
				map[string]any{
					"id":           1,
					"event":        "Registration in app",
					"created_at":   "2025-02-09T18:53:09",
					"description":  "first reg",
					"emotion":      "😐",
					"cat_name":     "App Achievements",
					"templ_name":   "Registration in App",
					"custom_event": "",
				},
				map[string]any{
					"id":           2,
					"event":        "Good Event",
					"created_at":   "2025-02-09T18:53:39",
					"description":  "awesome event",
					"emotion":      "🙂",
					"cat_name":     "Another Category",
					"templ_name":   "Good Event",
					"custom_event": "",
				},
			},
		},
	},
	{
		Title: "All Timelines Events Reactions Categories:",
		Name:  "get_tl_events_reactions_categories",
		ResultExample: []any{
			map[string]any{"id": 1, "category_name": "Happy reactions"},
			map[string]any{"id": 2, "category_name": "Sad reactions"},
		},
	},
	{
		Title: "All Timelines Events Reactions:",
		Name:  "get_tl_events_reactions",
		ResultExample: []any{
			map[string]any{
				"id":          1,
				"created_at":  "2025-02-10T13:02:48Z",
				"reaction":    "yeee",
				"description": "I'm very happy after registration in App",
				"emotion":     "🙂",
				"user":        1,
				"event":       1,
				"category":    1,
			},
			map[string]any{
				"id":          2,
				"created_at":  "2025-02-10T13:03:43Z",
				"reaction":    "I have only 1 good event yet - it's so sad!",
				"description": "oooh",
				"emotion":     "😩",
				"user":        1,
				"event":       2,
				"category":    2,
			},
		},
	},
}

var PostEndpoints = []Endpoint{
	{
		Title:       "Add New User:",
		Name:        "add_user",
		Detail:      `POST data should contains 2 string values: name, email. You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{"name": "John Doe", "email": "some-awesome-email@test.test"},
	},
	{
		Title:       "Add User Completed Poll (when User just starts completing some QuestonsGroup):",
		Name:        "add_user_completed_poll",
		Detail:      `POST data should contains 2 integer values: user_id, questions_group_id. You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{"user_id": 1, "questions_group_id": 1},
	},
	{
		Title:       "Add User Answer for Question:",
		Name:        "add_user_answer",
		Detail:      `POST data should contains 4 integer values: user_id, question_id, choice_id (as answer), user_completed_poll_id. You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{"user_id": 1, "question_id": 1, "choice_id": 1, "user_completed_poll_id": 1},
	},
	{
		Title:  "Add User Answers with Completed Poll:",
		Name:   "add_user_answers_with_cp",
		Detail: `POST data should contains 1 dict (completed_poll) with 2 integer values: user_id, questions_group_id; 1 list (user_answers) with 3 integer values: user_id, question_id, choice_id (as answer). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"completed_poll": map[string]any{"user_id": 1, "questions_group_id": 1},
			"user_answers": []any{
				map[string]any{"user_id": 1, "question_id": 1, "choice_id": 1},
				map[string]any{"user_id": 1, "question_id": 2, "choice_id": 2},
			},
		},
	},
	{
		Title:  "Add Journey",
		Name:   "add_journey",
		Detail: `POST data should contains 11 values: user_id (int), type_id (int), title (str), dates (str), description (str), link (str), countries (list of dicts). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"user_id":     1,
			"type_id":     1,
			"title":       "Awesome Journey",
			"dates":       "summer of 2010 and also several days of September till 2010-09-03",
			"description": "a long story about great journey",
			"link":        "link to photos album",
			"countries":   []any{map[string]any{"country_id": 1}, map[string]any{"country_id": 2}},
		},
	},
	{
		Title:  "Add Entry:",
		Name:   "add_entry",
		Detail: `POST data should contains 11 values: date_time (str), user_id (int), category_id (int), title (str), description (str), text (str), image_name (str), image_base64 (str), audio_name (str), audio_base64 (str), tags (list of dicts). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"date_time":    "2025-10-30 21:22:23",
			"user_id":      1,
			"category_id":  1,
			"title":        "Awesome Title",
			"description":  "some description",
			"text":         "a long story about something",
			"image_name":   "awesome_photo",
			"image_base64": "iVBORw0KGgoAAAANSUhEUgAAAAcAAAAFCAYAAACJmvbYAAAAOGVYSWZNTQAqAAAACAABh2kABAAAAAEAAAAaAAAAAAACoAIABAAAAAEAAAAHoAMABAAAAAEAAAAFAAAAAIhergwAAAA7SURBVAgdY2z4z/G/mvk/Q+tfRgYYgPGZQAIwCZAgMp8JJgAWRSJA4kwgXTAFyCaA2CwwY2AKYHwQDQCreRwVQ1OzowAAAABJRU5ErkJggg==",
			"audio_name":   "awesome_music",
			"audio_base64": "SUQzBAAAAAAAIlRTU0UAAAAOAAADTGF2ZjYxLjcuMTAwAAAAAAAAAAAAAAD/81jAAAAAAAAAAAAAWGluZwAAAA8AAAAGAAAHmAA9PT09PT09PT09PT09PT09bW1tbW1tbW1tbW1tbW1tbW2cnJycnJycnJycnJycnJyc3t7e3t7e3t7e3t7e3t7e3t77+/v7+/v7+/v7+/v7+/v7+/////////////////////8AAAAATGF2YzYxLjE5AAAAAAAAAAAAAAAAJARRAAAAAAAAB5jIlw2lAAAAAAAAAAAAAAD/84jEABKgAq7/QAAA1UJCBLmtiD/74nPiMPh+UD8QHChzgg7KAgGPy4Pg/1g+H/xACAIagQOeXP+XB94jP8EHZQEDn+XD8HwfB95c/4gDH4f5QEOc5QEFy8qIhWImMDVY90fAAAYlUBUYyCGrBVA81mXgxYWLAC4k4otdWGTISMN8FfAYdMoL07ZQJA0mAVH0SWyu/NoUCNFJtW9OdqpNxKgIQxBoEabSNquFSxqu+3yR4XDMswuITOSuTxBzXzmk1FTqOtZdtiS+2ltwlm3fh+kwovorUeiGcthbJ2vuVEVSyt3WQRL6+q2N+5g68vo4Pgujboy+Glq6rz9uMzTwwuE3MFNGupJqCV+S/DlOmGFAEQC0pmCMQJAU0C16bM7VVVVVVVVVVVVVVVVVVVVVVVVVVVVVU=",
			"tags":         []any{map[string]any{"tag_id": 1}, map[string]any{"tag_id": 2}},
		},
	},
	{
		Title:  "Add Timeline Event by user_id",
		Name:   "add_timeline_event",
		Detail: `POST data should contains 7 values: created_at (str), user_id (int), link (str), event_category (str), event_template (str), event (str), emotion (str). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"created_at":     "2025-10-30 21:22:23",
			"user_id":        1,
			"link":           "awesome.photo.com",
			"event_category": "Good Events",
			"event_template": "Some Good Event",
			"event":          "Some Good Event",
			"emotion":        "🙂",
		},
	},
	{
		Title:  "Add Timeline Event Reaction by event_id",
		Name:   "add_tl_event_reaction",
		Detail: `POST data should contains 7 values: created_at (str), user_id (int), event_id (int), category_id (int), reaction (str), description (str), emotion (str). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"created_at":  "2025-10-30 21:22:23",
			"user_id":     1,
			"event_id":    1,
			"category_id": 1,
			"reaction":    "yeee",
			"description": "I'm very happy after registration in App",
			"emotion":     "🙂",
		},
	},
	{
		Title:  "Edit Timeline Event by event_id",
		Name:   "edit_timeline_event",
		Detail: `POST data should contains 8 values: user_id (int), event_id (int), created_at (str), link (str), event_category (str), event_template (str), event (str), emotion (str). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"event_id":       1,
			"created_at":     "2025-10-30 21:22:23",
			"link":           "better.photo.com",
			"event_category": "Good Events",
			"event_template": "Some Good Event",
			"event":          "Not just Good Event, but Awesome Event",
			"emotion":        "🙂",
		},
	},
	{
		Title:  "Delete Timeline Event by user_id",
		Name:   "delete_timeline_event",
		Detail: `POST data should contains 3 values: email (str), name (str), event_id (int). You can try with Example - copy this JSON to the form below and click "POST" button`,
		ExamplePost: map[string]any{
			"email":    "some-awesome-email@test.test",
			"name":     "John Doe",
			"event_id": 1,
		},
	},
}
