package play

import "time"

// DefaultSeed は起動時に登録する公演一覧を返す
func DefaultSeed() []*Play {
	return []*Play{
		{
			ID:             1,
			Title:          "Гамлет",
			StartAt:        mustParse("2025-12-20T19:00:00Z"),
			Duration:       180,
			Genre:          "трагедия",
			Description:    "Классическая трагедия Уильяма Шекспира",
			Hall:           "Большой зал",
			AvailableSeats: 45,
		},
		{
			ID:             2,
			Title:          "Ревизор",
			StartAt:        mustParse("2025-12-22T18:30:00Z"),
			Duration:       150,
			Genre:          "комедия",
			Description:    "Комедия Николая Гоголя",
			Hall:           "Малый зал",
			AvailableSeats: 12,
		},
		{
			ID:             3,
			Title:          "Вишнёвый сад",
			StartAt:        mustParse("2025-12-25T19:30:00Z"),
			Duration:       165,
			Genre:          "драма",
			Description:    "Пьеса Антона Чехова",
			Hall:           "Большой зал",
			AvailableSeats: 78,
		},
	}
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
