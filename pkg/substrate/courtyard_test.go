package substrate

import "testing"

func TestNewCourtyardExpansion(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rectangle
		margin float64
		want   Rectangle
	}{
		{
			name:   "0402 body with KiCad standard margin",
			bounds: Rectangle{MinX: -0.5, MinY: -0.25, MaxX: 0.5, MaxY: 0.25},
			margin: 0.41,
			want:   Rectangle{MinX: -0.91, MinY: -0.66, MaxX: 0.91, MaxY: 0.66},
		},
		{
			name:   "default margin",
			bounds: Rectangle{MinX: -1.0, MinY: -0.625, MaxX: 1.0, MaxY: 0.625},
			margin: 0.25,
			want:   Rectangle{MinX: -1.25, MinY: -0.875, MaxX: 1.25, MaxY: 0.875},
		},
		{
			name:   "zero margin is identity",
			bounds: Rectangle{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1},
			margin: 0,
			want:   Rectangle{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1},
		},
		{
			name:   "negative margin inverts without correction",
			bounds: Rectangle{MinX: 0, MinY: 0, MaxX: 0.1, MaxY: 0.1},
			margin: -1,
			want:   Rectangle{MinX: 1, MinY: 1, MaxX: -0.9, MaxY: -0.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCourtyard(tt.bounds, tt.margin)
			if got.Bounds != tt.want {
				t.Errorf("NewCourtyard() bounds = %+v, want %+v", got.Bounds, tt.want)
			}
			if got.Layer != LayerCourtyard {
				t.Errorf("NewCourtyard() layer = %v, want courtyard", got.Layer)
			}
			if got.Margin != tt.margin {
				t.Errorf("NewCourtyard() margin = %v, want %v", got.Margin, tt.margin)
			}
		})
	}
}

func TestCourtyardGraphicElements(t *testing.T) {
	c := NewCourtyard(Rectangle{MinX: -1.0, MinY: -0.625, MaxX: 1.0, MaxY: 0.625}, 0.25)
	elements := c.GraphicElements()

	if len(elements) != 4 {
		t.Fatalf("GraphicElements() returned %d elements, want 4", len(elements))
	}

	// Perimeter trace order: top L->R, right T->B, bottom R->L, left B->T.
	wantEdges := []struct {
		start, end Position
	}{
		{Position{X: -1.25, Y: -0.875}, Position{X: 1.25, Y: -0.875}},
		{Position{X: 1.25, Y: -0.875}, Position{X: 1.25, Y: 0.875}},
		{Position{X: 1.25, Y: 0.875}, Position{X: -1.25, Y: 0.875}},
		{Position{X: -1.25, Y: 0.875}, Position{X: -1.25, Y: -0.875}},
	}

	seen := make(map[string]bool)
	for i, el := range elements {
		if el.Kind != GraphicLine {
			t.Errorf("element %d: kind = %v, want line", i, el.Kind)
		}
		if el.Start != wantEdges[i].start || el.End != wantEdges[i].end {
			t.Errorf("element %d: edge %v->%v, want %v->%v",
				i, el.Start, el.End, wantEdges[i].start, wantEdges[i].end)
		}
		if el.Layer != LayerCourtyard {
			t.Errorf("element %d: layer = %v, want courtyard", i, el.Layer)
		}
		if el.Stroke.Width != 0.05 || el.Stroke.Type != StrokeSolid {
			t.Errorf("element %d: stroke = %+v, want solid 0.05", i, el.Stroke)
		}
		if el.UUID == "" {
			t.Errorf("element %d: empty identity token", i)
		}
		if seen[el.UUID] {
			t.Errorf("element %d: duplicate identity token %s", i, el.UUID)
		}
		seen[el.UUID] = true
	}
}

func TestCourtyardDegenerateStillFourEdges(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rectangle
		margin float64
	}{
		{"zero area", Rectangle{}, 0},
		{"point", Rectangle{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}, 0},
		{"inverted", Rectangle{MinX: 0, MinY: 0, MaxX: 0.1, MaxY: 0.1}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := NewCourtyard(tt.bounds, tt.margin).GraphicElements()
			if len(elements) != 4 {
				t.Errorf("GraphicElements() returned %d elements, want 4", len(elements))
			}
		})
	}
}

func TestCourtyardTokensStableAcrossRebuilds(t *testing.T) {
	// The courtyard is rebuilt on every serialization; its tokens are
	// derived from geometry so repeated builds emit identical bytes.
	bounds := Rectangle{MinX: -1.0, MinY: -0.625, MaxX: 1.0, MaxY: 0.625}
	first := NewCourtyard(bounds, 0.25).GraphicElements()
	second := NewCourtyard(bounds, 0.25).GraphicElements()

	for i := range first {
		if first[i].UUID != second[i].UUID {
			t.Errorf("edge %d: token changed across rebuilds: %s vs %s",
				i, first[i].UUID, second[i].UUID)
		}
	}

	// A different rectangle must not collide.
	other := NewCourtyard(Rectangle{MinX: -2, MinY: -1, MaxX: 2, MaxY: 1}, 0.25).GraphicElements()
	if other[0].UUID == first[0].UUID {
		t.Errorf("different courtyards share a token: %s", other[0].UUID)
	}
}
