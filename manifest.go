package asteroids

// Manifest names the resources each role uses. Names are keys into the
// AssetManager.
type Manifest struct {
	Ship       string `yaml:"ship"`
	Shot       string `yaml:"shot"`
	Life       string `yaml:"life"`
	Font       string `yaml:"font"`
	Theme      string `yaml:"theme"`
	Boom       string `yaml:"boom"`
	Hyperspace string `yaml:"hyperspace"`
	Laser      string `yaml:"laser"`

	Meteors    MeteorAssets `yaml:"meteors"`
	Explosions MeteorSounds `yaml:"explosions"`
}

type MeteorAssets struct {
	Big    []string `yaml:"big"`
	Medium []string `yaml:"medium"`
	Small  []string `yaml:"small"`
}

type MeteorSounds struct {
	Big    string `yaml:"big"`
	Medium string `yaml:"medium"`
	Small  string `yaml:"small"`
}

func DefaultManifest() Manifest {
	return Manifest{
		Ship:       "Player/Ship.png",
		Shot:       "Shoot/Player.png",
		Life:       "Player/life.png",
		Font:       "trs-million.ttf",
		Theme:      "theme.ogg",
		Boom:       "sounds/boom.ogg",
		Hyperspace: "sounds/hyperspace.ogg",
		Laser:      "sounds/laser1.ogg",
		Meteors: MeteorAssets{
			Big:    []string{"Meteor/Big1.png", "Meteor/Big2.png", "Meteor/Big3.png", "Meteor/Big4.png"},
			Medium: []string{"Meteor/Medium1.png", "Meteor/Medium2.png"},
			Small:  []string{"Meteor/Small1.png", "Meteor/Small2.png", "Meteor/Small3.png", "Meteor/Small4.png"},
		},
		Explosions: MeteorSounds{
			Big:    "sounds/explosion1.ogg",
			Medium: "sounds/explosion2.ogg",
			Small:  "sounds/explosion3.ogg",
		},
	}
}

func (m Manifest) meteorTextures(size MeteorSize) []string {
	switch size {
	case MeteorBig:
		return m.Meteors.Big
	case MeteorMedium:
		return m.Meteors.Medium
	default:
		return m.Meteors.Small
	}
}

func (m Manifest) explosion(size MeteorSize) string {
	switch size {
	case MeteorBig:
		return m.Explosions.Big
	case MeteorMedium:
		return m.Explosions.Medium
	default:
		return m.Explosions.Small
	}
}
