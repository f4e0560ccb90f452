package triwarp

import "testing"

func TestBuildOptions(t *testing.T) {
	o := buildOptions(nil)
	if o.workers != 0 || o.kernel != KernelBiLinear || o.bounds != BoundsCanvas {
		t.Errorf("defaults = %+v", o)
	}

	o = buildOptions([]Option{WithWorkers(3), WithKernel(KernelCatmullRom), WithBounds(BoundsTight)})
	if o.workers != 3 || o.kernel != KernelCatmullRom || o.bounds != BoundsTight {
		t.Errorf("with options = %+v", o)
	}
}

func TestParseBounds(t *testing.T) {
	for _, b := range []Bounds{BoundsCanvas, BoundsTight} {
		got, err := ParseBounds(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBounds(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, err := ParseBounds(" Tight"); err != nil || got != BoundsTight {
		t.Errorf("ParseBounds(\" Tight\") = %v, %v", got, err)
	}
	if _, err := ParseBounds("cropped"); err == nil {
		t.Error("ParseBounds(\"cropped\") should fail")
	}
}
