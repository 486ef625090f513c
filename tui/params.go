// ABOUTME: Parameter manager for live widget option tuning
// ABOUTME: Handles parameter value adjustments with boundary checking

package tui

import (
	"math"
	"strconv"

	"easyscroll/config"
	"easyscroll/scrollsync"
)

// Parameter represents a tunable widget option with constraints
type Parameter struct {
	Name  string
	Value *int // Pointer to the tuning field
	Min   int
	Max   int
	Step  int
	Zero  string // Label shown instead of 0, empty to show the number
}

// Display returns the value as shown in the parameter bar
func (p Parameter) Display() string {
	if p.Value == nil {
		return "N/A"
	}

	if *p.Value == 0 && p.Zero != "" {
		return p.Zero
	}

	return strconv.Itoa(*p.Value)
}

// tuning holds the integer options the parameter bar edits
type tuning struct {
	Speed     int // Rows per wheel tick
	Height    int // Container rows, 0 fills the terminal
	TopOffset int // Rows reserved around a filling container
}

// tuningFromConfig extracts the mode and integer options from a config
func tuningFromConfig(cfg config.Config) (scrollsync.Mode, tuning) {
	norm := cfg.Options().Normalize()

	t := tuning{
		Speed:     int(math.Round(norm.Speed)),
		TopOffset: defaultTopOffset,
	}
	if t.Speed < 1 {
		t.Speed = 1
	}

	if norm.Height.Fill() {
		t.TopOffset = norm.TopOffset
	} else {
		t.Height = norm.Height.Fixed()
	}

	return norm.Mode, t
}

// toConfig converts the mode and tuning back to a config file value
func (t tuning) toConfig(mode scrollsync.Mode) config.Config {
	height := config.String(scrollsync.FillViewportMarker)
	if t.Height > 0 {
		height = config.Int(t.Height)
	}

	return config.Config{
		ShowBar:   mode.String(),
		Speed:     config.Int(t.Speed),
		Height:    height,
		TopOffset: config.Int(t.TopOffset),
	}
}

// newTuningParams builds the parameter list, pointing into t
func newTuningParams(t *tuning) []Parameter {
	return []Parameter{
		{Name: "Speed", Value: &t.Speed, Min: 1, Max: 50, Step: 1},
		{Name: "Height", Value: &t.Height, Min: 0, Max: 500, Step: 1, Zero: "fill"},
		{Name: "Top offset", Value: &t.TopOffset, Min: 0, Max: 50, Step: 1},
	}
}

// ParamManager manages widget parameter adjustments
type ParamManager struct {
	params        []Parameter
	selectedIndex int
}

// NewParamManager creates a new parameter manager
func NewParamManager(params []Parameter) *ParamManager {
	return &ParamManager{
		params:        params,
		selectedIndex: 0,
	}
}

// Selected returns the index of the currently selected parameter
func (pm *ParamManager) Selected() int {
	return pm.selectedIndex
}

// SetSelected sets the selected parameter index
func (pm *ParamManager) SetSelected(index int) {
	if index >= 0 && index < len(pm.params) {
		pm.selectedIndex = index
	}
}

// SelectNext moves selection to the next parameter
func (pm *ParamManager) SelectNext() {
	if pm.selectedIndex < len(pm.params)-1 {
		pm.selectedIndex++
	}
}

// SelectPrevious moves selection to the previous parameter
func (pm *ParamManager) SelectPrevious() {
	if pm.selectedIndex > 0 {
		pm.selectedIndex--
	}
}

// Increase increases the selected parameter value
// Returns true if the value was changed
func (pm *ParamManager) Increase() bool {
	param := pm.GetSelected()
	if param == nil || param.Value == nil {
		return false
	}

	newVal := *param.Value + param.Step
	if newVal > param.Max {
		return false
	}

	*param.Value = newVal

	return true
}

// Decrease decreases the selected parameter value
// Returns true if the value was changed
func (pm *ParamManager) Decrease() bool {
	param := pm.GetSelected()
	if param == nil || param.Value == nil {
		return false
	}

	newVal := *param.Value - param.Step
	if newVal < param.Min {
		return false
	}

	*param.Value = newVal

	return true
}

// ResetToDefaults resets all parameters to their default values
func (pm *ParamManager) ResetToDefaults(defaults tuning) {
	// Note: This assumes parameter order matches newTuningParams
	if len(pm.params) >= 3 {
		*pm.params[0].Value = defaults.Speed
		*pm.params[1].Value = defaults.Height
		*pm.params[2].Value = defaults.TopOffset
	}
}

// Get returns the parameter at the given index
func (pm *ParamManager) Get(index int) *Parameter {
	if index >= 0 && index < len(pm.params) {
		return &pm.params[index]
	}
	return nil
}

// GetSelected returns the currently selected parameter
func (pm *ParamManager) GetSelected() *Parameter {
	return pm.Get(pm.selectedIndex)
}

// Len returns the number of parameters
func (pm *ParamManager) Len() int {
	return len(pm.params)
}

// All returns all parameters (for rendering)
func (pm *ParamManager) All() []Parameter {
	return pm.params
}
