package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usergen/core/format"
)

func TestPattern_Expand(t *testing.T) {
	t.Parallel()

	john := format.Name{First: "John", Last: "Smith"}
	johnQ := format.Name{First: "John", Middle: "Quincy", Last: "Smith"}

	tests := []struct {
		name          string
		spec          string
		rec           format.Name
		caseSensitive bool
		want          []string
	}{
		{
			name: "separator pattern",
			spec: "first.last",
			rec:  john,
			want: []string{"john.smith"},
		},
		{
			name:          "capitalized initial plus capitalized last",
			spec:          "First[1]Last",
			rec:           john,
			caseSensitive: true,
			want:          []string{"JSmith"},
		},
		{
			name: "numeric suffix fans out",
			spec: "first2",
			rec:  john,
			want: []string{"john0", "john1", "john2"},
		},
		{
			name: "plain concatenation",
			spec: "firstlast",
			rec:  john,
			want: []string{"johnsmith"},
		},
		{
			name: "underscore separator",
			spec: "first_last",
			rec:  john,
			want: []string{"john_smith"},
		},
		{
			name: "truncation",
			spec: "first[2]",
			rec:  john,
			want: []string{"jo"},
		},
		{
			name: "truncation beyond field length keeps whole field",
			spec: "first[10]",
			rec:  john,
			want: []string{"john"},
		},
		{
			name: "truncation counts runes",
			spec: "first[2]",
			rec:  format.Name{First: "Łukasz"},
			want: []string{"łu"},
		},
		{
			name: "missing middle renders empty",
			spec: "first.middle.last",
			rec:  john,
			want: []string{"john..smith"},
		},
		{
			name: "middle present",
			spec: "first.middle.last",
			rec:  johnQ,
			want: []string{"john.quincy.smith"},
		},
		{
			name:          "capitalized middle",
			spec:          "Middle",
			rec:           johnQ,
			caseSensitive: true,
			want:          []string{"Quincy"},
		},
		{
			name:          "capitalized keyword reads original casing",
			spec:          "First",
			rec:           format.Name{First: "john"},
			caseSensitive: true,
			want:          []string{"John"},
		},
		{
			name:          "lowercase keyword preserves casing when sensitive",
			spec:          "first.last",
			rec:           john,
			caseSensitive: true,
			want:          []string{"John.Smith"},
		},
		{
			name:          "truncation before capitalization",
			spec:          "First[3]",
			rec:           format.Name{First: "john"},
			caseSensitive: true,
			want:          []string{"Joh"},
		},
		{
			name: "truncation with suffix",
			spec: "first[2]3",
			rec:  john,
			want: []string{"jo0", "jo1", "jo2", "jo3"},
		},
		{
			name: "suffix appended after trailing literals",
			spec: "first2.last",
			rec:  john,
			want: []string{"john.smith0", "john.smith1", "john.smith2"},
		},
		{
			name: "reversed order",
			spec: "last.first",
			rec:  john,
			want: []string{"smith.john"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := format.Compile(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Expand(tt.rec, tt.caseSensitive))
		})
	}
}

func TestPattern_Expand_AllLowercaseWhenInsensitive(t *testing.T) {
	t.Parallel()

	rec := format.Name{First: "JoHn", Middle: "QuInCy", Last: "SmItH"}
	specs := append(format.DefaultFormats(), "First.Middle.Last", "LITERAL-first")

	for _, spec := range specs {
		p, err := format.Compile(spec)
		require.NoError(t, err)
		for _, line := range p.Expand(rec, false) {
			assert.Equal(t, strings.ToLower(line), line, "spec %q produced %q", spec, line)
		}
	}
}

func TestPattern_AppendExpand(t *testing.T) {
	t.Parallel()

	p, err := format.Compile("first1")
	require.NoError(t, err)

	dst := make([]string, 0, 8)
	dst = p.AppendExpand(dst, format.Name{First: "Ann"}, false)
	dst = p.AppendExpand(dst, format.Name{First: "Bo"}, false)

	assert.Equal(t, []string{"ann0", "ann1", "bo0", "bo1"}, dst)
}

func TestPattern_Variants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec string
		want int
	}{
		{"first.last", 1},
		{"first0", 1},
		{"first4", 5},
		{"first[2]9", 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			p, err := format.Compile(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Variants())
		})
	}
}

func TestPattern_String(t *testing.T) {
	t.Parallel()

	p, err := format.Compile("first[1].last")
	require.NoError(t, err)
	assert.Equal(t, "first[1].last", p.String())
}
