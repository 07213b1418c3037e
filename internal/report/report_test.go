package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/covreport/internal/coverage"
	"github.com/roach88/covreport/internal/decode"
	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/strtab"
	"github.com/roach88/covreport/internal/testutil"
)

// twoObjectInput decodes two object records and one alter action; level 1
// reaches object 0 and action 0, and one session covers object 0.
func twoObjectInput(t *testing.T) Input {
	t.Helper()

	objects, err := decode.DecodeObjects(
		testutil.Concat(
			testutil.ObjectRecord(0x100, -1, 0),
			testutil.ObjectRecord(0x20, 7, 3),
		),
		decode.ObjectLabels{
			Names:      testutil.Labels{"Cruiser", "Laser"},
			ShortNames: testutil.Labels{"Cruiser", "Laser"},
			Notes:      testutil.Labels{"flagship", "pew"},
		},
	)
	require.NoError(t, err)

	actions, _, err := decode.DecodeActions(testutil.ActionRecord(3, 0x02000000), objects)
	require.NoError(t, err)

	reach := coverage.NewReachability([]ir.Document{
		{Level: 1, Objects: []int{0}, Actions: []int{0}},
	})
	cov := coverage.NewCoverage(reach)
	require.NoError(t, cov.Add(ir.Document{Level: 1, Objects: []int{0}}))

	return Input{
		Objects:    objects,
		Actions:    actions,
		LevelNames: strtab.New("level names", []string{"LEVELONE"}),
		Reachable:  reach,
		Covered:    cov,
	}
}

func TestRender_Golden(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, twoObjectInput(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "two_objects", buf.Bytes())
}

func TestRender_ObjectClassification(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, twoObjectInput(t)))
	out := buf.String()

	objects := section(out, `<h2 id="objects">`, `<h2 id="actions">`)
	assert.Equal(t, 3, strings.Count(objects, "<tr"), "header plus two rows")
	assert.Contains(t, objects, "<tr class=\"covered\">\n        <td class=\"id\">0</td>")
	assert.Contains(t, objects, "<tr class=\"unreachable\">\n        <td class=\"id\">1</td>")
	assert.Equal(t, 1, strings.Count(objects, `<td class="covered level">`))
	assert.Equal(t, 1, strings.Count(objects, `<td class="unreachable level">`))
}

func TestRender_LevelLabelEveryTenthRow(t *testing.T) {
	var recs [][]byte
	names := make(testutil.Labels, 12)
	for i := range names {
		recs = append(recs, testutil.ObjectRecord(0, -1, -1))
		names[i] = "obj"
	}
	objects, err := decode.DecodeObjects(testutil.Concat(recs...), decode.ObjectLabels{
		Names: names, ShortNames: names, Notes: names,
	})
	require.NoError(t, err)

	reach := coverage.NewReachability([]ir.Document{{Level: 1, Objects: []int{9}}})
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, Input{
		Objects:    objects,
		LevelNames: strtab.New("level names", []string{"ALPHA"}),
		Reachable:  reach,
		Covered:    coverage.NewCoverage(reach),
	}))

	out := buf.String()
	// Row 9 shows the label; styling is independent of it
	assert.Equal(t, 1, strings.Count(out, `<td class="uncovered level">ALPHA</td>`))
	assert.Equal(t, 11, strings.Count(out, `<td class="unreachable level"></td>`))
}

func TestRender_ColumnsAscendingByLevel(t *testing.T) {
	reach := coverage.NewReachability([]ir.Document{
		{Level: 3},
		{Level: 1},
		{Level: 2},
	})
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, Input{
		LevelNames: strtab.New("level names", []string{"ONE", "TWO", "THREE"}),
		Reachable:  reach,
		Covered:    coverage.NewCoverage(reach),
	}))

	out := buf.String()
	one := strings.Index(out, "<th>ONE</th>")
	two := strings.Index(out, "<th>TWO</th>")
	three := strings.Index(out, "<th>THREE</th>")
	require.True(t, one >= 0 && two >= 0 && three >= 0)
	assert.Less(t, one, two)
	assert.Less(t, two, three)
}

func TestRender_MissingLevelNameWritesNothing(t *testing.T) {
	reach := coverage.NewReachability([]ir.Document{{Level: 2}})
	buf := &bytes.Buffer{}

	err := Render(buf, Input{
		LevelNames: strtab.New("level names", []string{"ONE"}),
		Reachable:  reach,
		Covered:    coverage.NewCoverage(reach),
	})
	require.Error(t, err)
	assert.True(t, ir.IsCode(err, ir.ErrCodeMissingStringEntry))
	assert.Empty(t, buf.String())
}

func TestRender_CoveredBeatsUnreachableInColumn(t *testing.T) {
	in := twoObjectInput(t)
	// Session saw object 1 on level 1 though the manifest never listed it
	require.NoError(t, in.Covered.Add(ir.Document{Level: 1, Objects: []int{1}}))

	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, in))
	objects := section(buf.String(), `<h2 id="objects">`, `<h2 id="actions">`)
	assert.Equal(t, 2, strings.Count(objects, `<td class="covered level">`))
	assert.NotContains(t, objects, `<tr class="unreachable">`)
}

func section(s, from, to string) string {
	start := strings.Index(s, from)
	end := strings.Index(s, to)
	if start < 0 || end < start {
		return ""
	}
	return s[start:end]
}
