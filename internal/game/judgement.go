package game

type Rating int

const (
	Perfect Rating = iota
	Great
	Good
	Miss

	RatingCount = 4
)

func (r Rating) String() string {
	switch r {
	case Perfect:
		return "PERFECT!"
	case Great:
		return "GREAT!"
	case Good:
		return "GOOD"
	}
	return "MISS"
}

type Judgement struct {
	Rating   Rating
	Distance float64 // Exclusive upper bound for this rating
	Points   uint64
}

// Judgements is ordered from best to worst, the last entry being the miss.
var Judgements = []Judgement{
	{Rating: Perfect, Distance: 15, Points: 100},
	{Rating: Great, Distance: 30, Points: 80},
	{Rating: Good, Distance: 50, Points: 60},
	{Rating: Miss, Distance: -1},
}

// MissDistance is the distance at and beyond which a press cannot hit.
func MissDistance() float64 {
	return Judgements[len(Judgements)-2].Distance
}
