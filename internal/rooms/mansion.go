package rooms

import "context"

// MansionSpec is the built-in map: three full levels below the entrance hall.
func MansionSpec() *Spec {
	return &Spec{
		Name: "Entrance Hall",
		Clue: "An anonymous letter on the floor: 'Find me before it is too late'",
		Left: &Spec{
			Name: "Living Room",
			Clue: "A half-full glass of wine on the coffee table",
			Left: &Spec{
				Name: "Library",
				Clue: "A book about poisons lies open at page 45",
				Left: &Spec{
					Name: "Secret Study",
					Clue: "A diary with a meeting booked for yesterday",
				},
				Right: &Spec{Name: "Reading Room"},
			},
			Right: &Spec{
				Name: "Winter Garden",
				Clue: "Fresh mud marks on the marble floor",
				Left: &Spec{
					Name: "Greenhouse",
					Clue: "A rare flower crushed on the ground",
				},
				Right: &Spec{Name: "Pergola"},
			},
		},
		Right: &Spec{
			Name: "Main Corridor",
			Clue: "A wall clock stopped at exactly 23:45",
			Left: &Spec{
				Name: "Kitchen",
				Clue: "A knife is missing from the block on the wall",
				Left: &Spec{
					Name: "Pantry",
					Clue: "A medicine bottle with its label torn off",
				},
				Right: &Spec{
					Name: "Laundry",
					Clue: "A shirt stained with a reddish substance",
				},
			},
			Right: &Spec{
				Name: "Games Room",
				Clue: "A chess game with black well ahead",
				Left: &Spec{
					Name: "Music Room",
					Clue: "An unfinished score on the piano",
				},
				Right: &Spec{
					Name: "Billiard Room",
					Clue: "A note under the table: 'Beware of the butler'",
				},
			},
		},
	}
}

// Mansion supplies the built-in map.
func Mansion() Supplier {
	return SupplierFunc(func(ctx context.Context) (*Room, error) {
		return Build(MansionSpec())
	})
}
