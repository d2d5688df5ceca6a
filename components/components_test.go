package components

import "testing"

func TestPowerAlive(t *testing.T) {
	tests := []struct {
		name  string
		power Power
		want  bool
	}{
		{"full", Power{Value: 7, Max: 7}, true},
		{"last point", Power{Value: 1, Max: 7}, true},
		{"depleted", Power{Value: 0, Max: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.power.Alive(); got != tt.want {
				t.Errorf("Alive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPowerRatio(t *testing.T) {
	tests := []struct {
		name  string
		power Power
		want  float32
	}{
		{"full", Power{Value: 7, Max: 7}, 1},
		{"half", Power{Value: 3, Max: 6}, 0.5},
		{"depleted", Power{Value: 0, Max: 7}, 0},
		{"degenerate max", Power{Value: 0, Max: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.power.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}
