package export

import (
	"bytes"
	"image/gif"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/sorting"
)

func frame(values []int, highlight int, sorted bool) sorting.Frame {
	return sorting.Frame{Values: values, Highlight: highlight, Sorted: sorted}
}

func TestFrameSVG(t *testing.T) {
	svg := FrameSVG(frame([]int{100, 200}, 1, false))

	require.True(t, strings.HasPrefix(svg, "<?xml"))
	require.Contains(t, svg, `width="1200" height="600"`)
	require.Contains(t, svg, `<rect x="0" y="500" width="10" height="100" fill="#ffffff"/>`)
	require.Contains(t, svg, `<rect x="12" y="400" width="10" height="200" fill="#00ff00"/>`)
	require.True(t, strings.HasSuffix(svg, "</svg>"))

	sorted := FrameSVG(frame([]int{100, 200}, 0, true))
	require.Equal(t, 2, strings.Count(sorted, svgHighlight))
}

func TestContourSVG(t *testing.T) {
	require.Empty(t, ContourSVG([]int{3}, 100, 10, 10, "#fff"))

	svg := ContourSVG([]int{0, 99}, 100, 200, 100, "#00ff00")
	require.Contains(t, svg, `d="M0.0,100.0 L200.0,0.0"`)
	require.Contains(t, svg, `stroke="#00ff00"`)
}

func TestRecorderSampling(t *testing.T) {
	r := NewRecorder(3, 2)
	values := []int{10, 20, 30}
	for i := 0; i < 7; i++ {
		r.Render(frame(values, i%3, false))
	}
	require.Equal(t, 3, r.Len())

	r.Render(frame(values, 0, true))
	require.Equal(t, 4, r.Len())
}

func TestRecorderGeometry(t *testing.T) {
	r := NewRecorder(1, 2)
	r.Render(frame([]int{100, 40}, 1, false))

	img := r.frames[0]
	require.Equal(t, 600, img.Bounds().Dx())
	require.Equal(t, 300, img.Bounds().Dy())

	// Bar 0 covers x in [0, 5) and y in [250, 300) after halving.
	require.Equal(t, uint8(idxBar), img.ColorIndexAt(0, 299))
	require.Equal(t, uint8(idxBar), img.ColorIndexAt(4, 250))
	require.Equal(t, uint8(idxBackground), img.ColorIndexAt(5, 299))
	require.Equal(t, uint8(idxBackground), img.ColorIndexAt(0, 249))
	// Bar 1 is highlighted and starts at x = 6.
	require.Equal(t, uint8(idxHighlight), img.ColorIndexAt(6, 299))
	require.Equal(t, uint8(idxBackground), img.ColorIndexAt(6, 279))
}

func TestRecorderEncode(t *testing.T) {
	r := NewRecorder(1, 4)
	var buf bytes.Buffer
	require.Error(t, r.Encode(&buf))

	r.Render(frame([]int{1, 2}, 0, false))
	r.Render(frame([]int{1, 2}, 0, true))

	path := filepath.Join(t.TempDir(), "run.gif")
	require.NoError(t, r.Save(path))

	require.NoError(t, r.Encode(&buf))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 2)
	require.Equal(t, []int{2, 2}, anim.Delay)
}

func TestReportWriters(t *testing.T) {
	rep := Report{
		Size: 100,
		Runs: []RunReport{
			{Algorithm: "bubble", Seed: 1, Comparisons: 10, Swaps: 4, Metrics: map[string]float64{"steps": 4, "coverage": 0.5}},
			{Algorithm: "merge", Seed: 1, Comparisons: 8, Writes: 16, Metrics: map[string]float64{"steps": 16}},
		},
	}

	var csvBuf bytes.Buffer
	require.NoError(t, WriteCSV(&csvBuf, rep))
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	require.Equal(t, []string{
		"algorithm,seed,comparisons,swaps,writes,coverage,steps",
		"bubble,1,10,4,0,0.5,4",
		"merge,1,8,0,16,0,16",
	}, lines)

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteJSON(&jsonBuf, rep))
	require.Contains(t, jsonBuf.String(), `"algorithm": "merge"`)
	require.Contains(t, jsonBuf.String(), `"size": 100`)
}
