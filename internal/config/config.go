// Package config loads the Game Server's KEY=VALUE configuration file and
// derives the world constants that depend on it.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/magiconair/properties"
)

// GameServer holds the raw and derived configuration of one Game Server process.
type GameServer struct {
	ServerName string
	ServerCode string // empty = open server, no code required
	Port       int

	MapWidth  int
	MapHeight int

	MaxPlayers int

	FoodPercentage   float64
	FoodSpawnPerTick int
	StartSizePercent float64
	MaxSizePercent   float64

	PingTimeoutSeconds    float64
	InactivityTimeoutSecs float64

	MoveSpeedBase    float64
	GrowthRateFood   float64
	GrowthRatePlayer float64

	// Derived fields, computed by Derive() from the fields above (§6).
	PlayerStartSize float64
	PlayerMinSize   float64
	PlayerMaxSize   float64
	FoodSize        float64
	MaxFood         int
}

// Default returns the reference configuration written out by WriteDefaultTemplate
// and used whenever a value is absent from the file on disk.
func Default() GameServer {
	cfg := GameServer{
		ServerName: "Arena",
		ServerCode: "",
		Port:       8888,

		MapWidth:  1000,
		MapHeight: 1000,

		MaxPlayers: 50,

		FoodPercentage:   0.1,
		FoodSpawnPerTick: 5,
		StartSizePercent: 0.01,
		MaxSizePercent:   0.1,

		PingTimeoutSeconds:    20,
		InactivityTimeoutSecs: 120,

		MoveSpeedBase:    60,
		GrowthRateFood:   1.0,
		GrowthRatePlayer: 0.5,
	}
	cfg.Derive()
	return cfg
}

// Derive recomputes every field §6 defines in terms of the others. Call it
// after any change to MapWidth, MapHeight, StartSizePercent, MaxSizePercent,
// or FoodPercentage.
func (c *GameServer) Derive() {
	dim := float64(c.MapWidth)
	if c.MapHeight < c.MapWidth {
		dim = float64(c.MapHeight)
	}

	c.PlayerStartSize = dim * c.StartSizePercent
	c.PlayerMaxSize = dim * c.MaxSizePercent
	c.PlayerMinSize = 0.5 * c.PlayerStartSize
	c.FoodSize = 0.25 * c.PlayerStartSize

	area := float64(c.MapWidth) * float64(c.MapHeight)
	foodArea := math.Pi * c.FoodSize * c.FoodSize
	maxFood := 10
	if foodArea > 0 {
		maxFood = int(math.Floor((area * c.FoodPercentage) / foodArea))
	}
	c.MaxFood = clampInt(maxFood, 10, 10000)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Load reads a KEY=VALUE configuration file (§6). If path does not exist,
// Load writes a defaulted template to path and returns an error describing
// the prompt an operator should see; the caller is expected to exit.
func Load(path string) (GameServer, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if werr := WriteDefaultTemplate(path, cfg); werr != nil {
				return cfg, fmt.Errorf("config %s missing and could not write template: %w", path, werr)
			}
			return cfg, fmt.Errorf("no config found at %s: a default template was written there, please review it and restart", path)
		}
		return GameServer{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return GameServer{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := Default()
	cfg.ServerName = p.GetString("SERVER_NAME", cfg.ServerName)
	cfg.ServerCode = p.GetString("SERVER_CODE", cfg.ServerCode)
	cfg.Port = p.GetInt("GAME_SERVER_PORT", cfg.Port)
	cfg.MapWidth = p.GetInt("MAP_WIDTH", cfg.MapWidth)
	cfg.MapHeight = p.GetInt("MAP_HEIGHT", cfg.MapHeight)
	cfg.MaxPlayers = p.GetInt("MAX_PLAYERS", cfg.MaxPlayers)
	cfg.FoodPercentage = p.GetFloat64("FOOD_PERCENTAGE", cfg.FoodPercentage)
	cfg.FoodSpawnPerTick = p.GetInt("FOOD_SPAWN_PER_TICK", cfg.FoodSpawnPerTick)
	cfg.StartSizePercent = p.GetFloat64("PLAYER_START_SIZE_PERCENTAGE", cfg.StartSizePercent)
	cfg.MaxSizePercent = p.GetFloat64("PLAYER_MAX_SIZE_PERCENTAGE", cfg.MaxSizePercent)
	cfg.PingTimeoutSeconds = p.GetFloat64("PING_TIMEOUT_SECONDS", cfg.PingTimeoutSeconds)
	cfg.InactivityTimeoutSecs = p.GetFloat64("INACTIVITY_TIMEOUT_SECONDS", cfg.InactivityTimeoutSecs)
	cfg.MoveSpeedBase = p.GetFloat64("MOVE_SPEED_BASE", cfg.MoveSpeedBase)
	cfg.GrowthRateFood = p.GetFloat64("GROWTH_RATE_FOOD", cfg.GrowthRateFood)
	cfg.GrowthRatePlayer = p.GetFloat64("GROWTH_RATE_PLAYER", cfg.GrowthRatePlayer)

	cfg.Derive()
	return cfg, nil
}

// WriteDefaultTemplate writes cfg out in the KEY=VALUE format §6 describes,
// with a comment header, so an operator can fill in a missing config file.
func WriteDefaultTemplate(path string, cfg GameServer) error {
	template := fmt.Sprintf(`# Blob Arena game server configuration.
# Lines starting with # are comments. Derived values (PLAYER_START_SIZE,
# MAX_PLAYER_SIZE, MIN_PLAYER_SIZE, FOOD_SIZE, MAX_FOOD) are computed from
# these at startup and are not set here.

SERVER_NAME=%s
SERVER_CODE=%s
GAME_SERVER_PORT=%d

MAP_WIDTH=%d
MAP_HEIGHT=%d

MAX_PLAYERS=%d

FOOD_PERCENTAGE=%g
FOOD_SPAWN_PER_TICK=%d
PLAYER_START_SIZE_PERCENTAGE=%g
PLAYER_MAX_SIZE_PERCENTAGE=%g

PING_TIMEOUT_SECONDS=%g
INACTIVITY_TIMEOUT_SECONDS=%g

MOVE_SPEED_BASE=%g
GROWTH_RATE_FOOD=%g
GROWTH_RATE_PLAYER=%g
`,
		cfg.ServerName, cfg.ServerCode, cfg.Port,
		cfg.MapWidth, cfg.MapHeight,
		cfg.MaxPlayers,
		cfg.FoodPercentage, cfg.FoodSpawnPerTick, cfg.StartSizePercent, cfg.MaxSizePercent,
		cfg.PingTimeoutSeconds, cfg.InactivityTimeoutSecs,
		cfg.MoveSpeedBase, cfg.GrowthRateFood, cfg.GrowthRatePlayer,
	)

	return os.WriteFile(path, []byte(template), 0644)
}

// Discovery holds the Discovery Service's (much smaller) configuration.
// §6 describes no config file for it; cmd/discoveryserver fills this in from
// CLI flags.
type Discovery struct {
	Port int
}

// DefaultDiscovery returns the Discovery Service's default port (§6: 7777).
func DefaultDiscovery() Discovery {
	return Discovery{Port: 7777}
}
