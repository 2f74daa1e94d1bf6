// @focus: #constants { gameplay }
package constants

// Scoring
const (
	// PointsPerFood is multiplied by the current level on each food pickup
	PointsPerFood = 10

	// PointsPerLevel is the score span of one level
	PointsPerLevel = 100
)

// Speed Curve
const (
	// BaseSpeed is the speed multiplier before any level bonus
	BaseSpeed = 1.0

	// SpeedPerLevel is added to the speed multiplier per level
	SpeedPerLevel = 0.5

	// MaxSpeed caps the speed multiplier
	MaxSpeed = 5.0
)

// Food
const (
	// FoodPulseRate is the food pulse angular rate in radians per millisecond
	FoodPulseRate = 0.01
)
