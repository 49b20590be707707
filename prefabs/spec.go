package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads a tuning spec, layering the yaml file over the provided
// defaults. Fields absent from the file keep their default values.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return defaults, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := defaults
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return defaults, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	MoveSpeed     float64    `yaml:"move_speed"`
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
	InvulnSeconds float64    `yaml:"invuln_seconds"`
	PadTop        float64    `yaml:"pad_top"`
	PadBottom     float64    `yaml:"pad_bottom"`
	Bubble        BubbleSpec `yaml:"bubble"`
	Melee         MeleeSpec  `yaml:"melee"`
}

type BubbleSpec struct {
	FormationSeconds float64 `yaml:"formation_seconds"`
	SpawnFraction    float64 `yaml:"spawn_fraction"`
	CooldownSeconds  float64 `yaml:"cooldown_seconds"`
	Speed            float64 `yaml:"speed"`
	LifespanSeconds  float64 `yaml:"lifespan_seconds"`
	Radius           float64 `yaml:"radius"`
	Damage           float64 `yaml:"damage"`
	MaxActive        int     `yaml:"max_active"`
	PopSeconds       float64 `yaml:"pop_seconds"`
}

type MeleeSpec struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Damage          float64 `yaml:"damage"`
}

// DefaultPlayerSpec returns the built-in player tuning.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		MoveSpeed:     240,
		Width:         60,
		Height:        48,
		InvulnSeconds: 1.5,
		PadTop:        40,
		PadBottom:     30,
		Bubble: BubbleSpec{
			FormationSeconds: 0.7,
			SpawnFraction:    0.65,
			CooldownSeconds:  1.8,
			Speed:            320,
			LifespanSeconds:  2.2,
			Radius:           8,
			Damage:           25,
			MaxActive:        6,
			PopSeconds:       0.15,
		},
		Melee: MeleeSpec{
			DurationSeconds: 0.35,
			Width:           50,
			Height:          40,
			Damage:          20,
		},
	}
}

func LoadPlayerSpec() PlayerSpec {
	spec, err := LoadSpec("player.yaml", DefaultPlayerSpec())
	if err != nil {
		return DefaultPlayerSpec()
	}
	return spec
}

type BossSpec struct {
	MaxHP               float64 `yaml:"max_hp"`
	Radius              float64 `yaml:"radius"`
	BaseSpeed           float64 `yaml:"base_speed"`
	SpawnSeconds        float64 `yaml:"spawn_seconds"`
	IdleSeconds         float64 `yaml:"idle_seconds"`
	WindupSeconds       float64 `yaml:"windup_seconds"`
	HurtSeconds         float64 `yaml:"hurt_seconds"`
	DeathSinkSeconds    float64 `yaml:"death_sink_seconds"`
	SinkSpeed           float64 `yaml:"sink_speed"`
	ChargeForceDistance float64 `yaml:"charge_force_distance"`

	// phase-indexed lookup values, index 0 is phase 1
	PhaseSpeed       []float64 `yaml:"phase_speed"`
	PhaseAttackDelay []float64 `yaml:"phase_attack_delay"`

	Charge ChargeSpec `yaml:"charge"`
	Volley VolleySpec `yaml:"volley"`
	Slam   SlamSpec   `yaml:"slam"`
}

type ChargeSpec struct {
	WindupSeconds float64 `yaml:"windup_seconds"`
	DashSeconds   float64 `yaml:"dash_seconds"`
	SpeedMultiple float64 `yaml:"speed_multiple"`
}

type VolleySpec struct {
	Shots               int     `yaml:"shots"`
	ShotsPhase3         int     `yaml:"shots_phase3"`
	IntervalSeconds     float64 `yaml:"interval_seconds"`
	ShotSpeed           float64 `yaml:"shot_speed"`
	ShotLifespanSeconds float64 `yaml:"shot_lifespan_seconds"`
	ShotRadius          float64 `yaml:"shot_radius"`
}

type SlamSpec struct {
	RiseSeconds    float64 `yaml:"rise_seconds"`
	RiseSpeed      float64 `yaml:"rise_speed"`
	DescendSeconds float64 `yaml:"descend_seconds"`
	DescendSpeed   float64 `yaml:"descend_speed"`
}

// DefaultBossSpec returns the built-in boss tuning.
func DefaultBossSpec() BossSpec {
	return BossSpec{
		MaxHP:               300,
		Radius:              55,
		BaseSpeed:           120,
		SpawnSeconds:        1.5,
		IdleSeconds:         0.5,
		WindupSeconds:       0.8,
		HurtSeconds:         0.4,
		DeathSinkSeconds:    2.0,
		SinkSpeed:           60,
		ChargeForceDistance: 180,
		PhaseSpeed:          []float64{1.0, 1.2, 1.45, 1.75},
		PhaseAttackDelay:    []float64{3.0, 2.4, 1.8, 1.2},
		Charge: ChargeSpec{
			WindupSeconds: 0.3,
			DashSeconds:   0.5,
			SpeedMultiple: 3.5,
		},
		Volley: VolleySpec{
			Shots:               3,
			ShotsPhase3:         5,
			IntervalSeconds:     0.35,
			ShotSpeed:           260,
			ShotLifespanSeconds: 3.0,
			ShotRadius:          10,
		},
		Slam: SlamSpec{
			RiseSeconds:    0.6,
			RiseSpeed:      160,
			DescendSeconds: 0.35,
			DescendSpeed:   520,
		},
	}
}

func LoadBossSpec() BossSpec {
	spec, err := LoadSpec("boss.yaml", DefaultBossSpec())
	if err != nil {
		return DefaultBossSpec()
	}
	return spec
}

type PufferSpec struct {
	Speed          float64 `yaml:"speed"`
	PatrolRange    float64 `yaml:"patrol_range"`
	InflateRange   float64 `yaml:"inflate_range"`
	Radius         float64 `yaml:"radius"`
	InflatedRadius float64 `yaml:"inflated_radius"`
	Score          int     `yaml:"score"`
}

func DefaultPufferSpec() PufferSpec {
	return PufferSpec{
		Speed:          60,
		PatrolRange:    120,
		InflateRange:   110,
		Radius:         20,
		InflatedRadius: 30,
		Score:          20,
	}
}

func LoadPufferSpec() PufferSpec {
	spec, err := LoadSpec("puffer.yaml", DefaultPufferSpec())
	if err != nil {
		return DefaultPufferSpec()
	}
	return spec
}

type JellyfishSpec struct {
	DriftAmplitude float64 `yaml:"drift_amplitude"`
	DriftFrequency float64 `yaml:"drift_frequency"`
	Radius         float64 `yaml:"radius"`
	Score          int     `yaml:"score"`
	// Script names an optional tengo motion script in prefabs/scripts that
	// overrides the built-in sine drift.
	Script string `yaml:"script"`
}

func DefaultJellyfishSpec() JellyfishSpec {
	return JellyfishSpec{
		DriftAmplitude: 40,
		DriftFrequency: 0.8,
		Radius:         18,
		Score:          20,
		Script:         "jellyfish_drift.tengo",
	}
}

func LoadJellyfishSpec() JellyfishSpec {
	spec, err := LoadSpec("jellyfish.yaml", DefaultJellyfishSpec())
	if err != nil {
		return DefaultJellyfishSpec()
	}
	return spec
}

type HazardSpec struct {
	ActiveSeconds   float64 `yaml:"active_seconds"`
	InactiveSeconds float64 `yaml:"inactive_seconds"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
}

func DefaultHazardSpec() HazardSpec {
	return HazardSpec{
		ActiveSeconds:   1.6,
		InactiveSeconds: 1.2,
		Width:           36,
		Height:          60,
	}
}

func LoadHazardSpec() HazardSpec {
	spec, err := LoadSpec("hazard.yaml", DefaultHazardSpec())
	if err != nil {
		return DefaultHazardSpec()
	}
	return spec
}
