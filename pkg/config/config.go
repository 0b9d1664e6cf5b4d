package config

import (
	"encoding/json"
	"os"

	"github.com/Alphinito/route-optimizer/pkg/domain"
	"github.com/go-playground/validator/v10"
)

// Defaults applied when the optional grid block is missing or partial.
const (
	DefaultGridWidth  = 15
	DefaultGridHeight = 12
	DefaultCellSize   = 50.0
)

// Node is one point of interest placed on a grid intersection.
type Node struct {
	ID    string `json:"id" validate:"required"`
	GridX int32  `json:"grid_x"`
	GridY int32  `json:"grid_y"`
	Type  string `json:"type"`
	Name  string `json:"name"`
}

// Grid is the optional grid block. BlockedRoads entries are
// ["grid_x_y", "grid_x_y"] pairs applied to both directions before
// optimization.
type Grid struct {
	Width        int32       `json:"width"`
	Height       int32       `json:"height"`
	CellSize     float64     `json:"cell_size"`
	BlockedRoads [][2]string `json:"blocked_roads"`
}

type Config struct {
	Grid              *Grid    `json:"grid"`
	Nodes             []Node   `json:"nodes" validate:"required,min=1,dive"`
	DeliveryAddresses []string `json:"delivery_addresses"`
}

// Load reads and validates a JSON configuration file. Missing required
// fields are configuration errors here, never surfaced from the core. An
// empty (but present) delivery_addresses list is legal; the caller decides
// how to treat it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "cannot read config file %q", path)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "config file %q is not valid json", path)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrBadParamInput, "config file %q is missing required fields", path)
	}
	if cfg.DeliveryAddresses == nil {
		return nil, domain.WrapErrorf(nil, domain.ErrBadParamInput,
			"config file %q is missing required field delivery_addresses", path)
	}

	return &cfg, nil
}

// GridConfig returns the grid parameters with defaults filled in.
func (c *Config) GridConfig() (int32, int32, float64) {
	width, height, cellSize := int32(DefaultGridWidth), int32(DefaultGridHeight), DefaultCellSize
	if c.Grid != nil {
		if c.Grid.Width > 0 {
			width = c.Grid.Width
		}
		if c.Grid.Height > 0 {
			height = c.Grid.Height
		}
		if c.Grid.CellSize > 0 {
			cellSize = c.Grid.CellSize
		}
	}
	return width, height, cellSize
}

func (c *Config) BlockedRoads() [][2]string {
	if c.Grid == nil {
		return nil
	}
	return c.Grid.BlockedRoads
}

func (c *Config) NodeByID(id string) (Node, bool) {
	for _, node := range c.Nodes {
		if node.ID == id {
			return node, true
		}
	}
	return Node{}, false
}
