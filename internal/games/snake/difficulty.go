package snake

// OnFoodEaten counts an eaten food item and raises the speed every
// FoodPerLevel items.
func (g *Game) OnFoodEaten() {
	g.foodSinceSpeedup++
	if g.foodSinceSpeedup >= g.cfg.Difficulty.FoodPerLevel {
		g.IncreaseSpeed()
	}
}

// IncreaseSpeed moves to the next difficulty level. Both axes get the same
// interval derived from the averaged base, floored at the configured minimum.
func (g *Game) IncreaseSpeed() {
	g.level++

	base := (g.baseIntervalH + g.baseIntervalV) / 2
	interval := g.cfg.Difficulty.Interval(base, g.level)

	g.intervalH = interval
	g.intervalV = interval
	g.foodSinceSpeedup = 0
}

// FoodSinceSpeedup returns the food eaten since the last level change.
func (g *Game) FoodSinceSpeedup() int {
	return g.foodSinceSpeedup
}
