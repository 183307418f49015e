package geometry

import "testing"

func TestFlatUnflatMonoBijection(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			flat := FlatMono(row, col)
			gotRow, gotCol := UnflatMono(flat)
			if gotRow != row || gotCol != col {
				t.Errorf("FlatMono(%d,%d)=%d, UnflatMono=(%d,%d)", row, col, flat, gotRow, gotCol)
			}
		}
	}
}

func TestFlatUnflatBiBijection(t *testing.T) {
	for p0 := 0; p0 < Positions; p0++ {
		for p1 := 0; p1 < Positions; p1++ {
			idx := FlatBi(p0, p1)
			g0, g1 := UnflatBi(idx)
			if g0 != p0 || g1 != p1 {
				t.Fatalf("FlatBi(%d,%d)=%d, UnflatBi=(%d,%d)", p0, p1, idx, g0, g1)
			}
		}
	}
}

func TestFlatUnflatTriSample(t *testing.T) {
	cases := [][3]int{{0, 0, 0}, {35, 35, 35}, {1, 17, 30}, {9, 3, 22}}
	for _, c := range cases {
		idx := FlatTri(c[0], c[1], c[2])
		g0, g1, g2 := UnflatTri(idx)
		if g0 != c[0] || g1 != c[1] || g2 != c[2] {
			t.Errorf("FlatTri%v=%d, UnflatTri=(%d,%d,%d)", c, idx, g0, g1, g2)
		}
	}
}

func TestFlatUnflatQuadSample(t *testing.T) {
	cases := [][4]int{{0, 0, 0, 0}, {35, 35, 35, 35}, {1, 17, 30, 8}, {9, 3, 22, 14}}
	for _, c := range cases {
		idx := FlatQuad(c[0], c[1], c[2], c[3])
		g0, g1, g2, g3 := UnflatQuad(idx)
		if g0 != c[0] || g1 != c[1] || g2 != c[2] || g3 != c[3] {
			t.Errorf("FlatQuad%v=%d, UnflatQuad=(%d,%d,%d,%d)", c, idx, g0, g1, g2, g3)
		}
	}
}

func TestIndexBiDistinctness(t *testing.T) {
	const l = 5
	seen := make(map[int64]bool)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			idx := IndexBi(l, i, j)
			if seen[idx] {
				t.Fatalf("IndexBi(%d,%d,%d) collides with a previous index", l, i, j)
			}
			seen[idx] = true
			if idx < 0 || idx >= int64(l*l) {
				t.Fatalf("IndexBi(%d,%d,%d)=%d out of range [0,%d)", l, i, j, idx, l*l)
			}
		}
	}
}

func TestHandOf(t *testing.T) {
	for col := 0; col < 6; col++ {
		if HandOf(col) != Left {
			t.Errorf("HandOf(%d) = Right, want Left", col)
		}
	}
	for col := 6; col < Cols; col++ {
		if HandOf(col) != Right {
			t.Errorf("HandOf(%d) = Left, want Right", col)
		}
	}
}

func TestIsStretch(t *testing.T) {
	stretch := map[int]bool{0: true, 5: true, 6: true, 11: true}
	for col := 0; col < Cols; col++ {
		if got := IsStretch(col); got != stretch[col] {
			t.Errorf("IsStretch(%d) = %v, want %v", col, got, stretch[col])
		}
	}
}
