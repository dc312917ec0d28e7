package data

// DefaultCatalog возвращает встроенный набор треков
func DefaultCatalog() *Catalog {
	return &Catalog{
		Tracks: []Track{
			{
				ID:     1,
				Title:  "Midnight City",
				Artist: "M83",
				Genre:  "Electronic",
				Rating: 87,
				Plays:  15420,
				Comments: []Comment{
					{ID: 1, User: "Алексей", Text: "Невероятный трек! Атмосфера космическая", Rating: 95, Date: "2 дня назад"},
					{ID: 2, User: "Мария", Text: "Классика жанра, слушаю уже 10 лет", Rating: 88, Date: "1 день назад"},
				},
			},
			{
				ID:     2,
				Title:  "Strobe",
				Artist: "Deadmau5",
				Genre:  "Progressive House",
				Rating: 92,
				Plays:  28540,
				Comments: []Comment{
					{ID: 3, User: "Дмитрий", Text: "Эпическое нарастание, мурашки гарантированы", Rating: 98, Date: "3 часа назад"},
				},
			},
			{
				ID:       3,
				Title:    "Teardrop",
				Artist:   "Massive Attack",
				Genre:    "Trip Hop",
				Rating:   94,
				Plays:    19870,
				Comments: []Comment{},
			},
			{
				ID:     4,
				Title:  "Porcelain",
				Artist: "Moby",
				Genre:  "Ambient",
				Rating: 89,
				Plays:  12340,
				Comments: []Comment{
					{ID: 4, User: "Елена", Text: "Меланхоличная красота", Rating: 91, Date: "5 часов назад"},
				},
			},
		},
	}
}
