package asteroids

// Level is a 1-based difficulty tier.
type Level int

const LevelOne Level = 1

// Next returns the following level, staying at max once reached.
func (l Level) Next(max Level) Level {
	if l >= max {
		return max
	}
	return l + 1
}

func (t Tuning) MaxLevel() Level {
	return Level(len(t.LevelMeteors))
}

// MeteorCount is how many big meteors open level l.
func (t Tuning) MeteorCount(l Level) int {
	if len(t.LevelMeteors) == 0 {
		return 0
	}
	if l < LevelOne {
		l = LevelOne
	}
	if l > t.MaxLevel() {
		l = t.MaxLevel()
	}
	return t.LevelMeteors[l-1]
}
