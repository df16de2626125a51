package render

import (
	"testing"

	"github.com/org/pw/internal/query"
	"github.com/org/pw/internal/store"
	"github.com/org/pw/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rec = models.Record{
	Status:   models.Active,
	Name:     []byte("github"),
	Link:     []byte("https://github.com"),
	Username: []byte("octocat"),
	Secret:   []byte("Xy9%Nq"),
}

func TestFormat(t *testing.T) {
	cases := []struct {
		template string
		want     string
	}{
		{"%N", "github"},
		{"%L", "https://github.com"},
		{"%U", "octocat"},
		{"%P", "Xy9%Nq"},
		{"%U:%P@%L", "octocat:Xy9%Nq@https://github.com"},
		{ListTemplate, "github (https://github.com) octocat Xy9%Nq"},
		{"", ""},
		{"no directives here", "no directives here"},
		{"%", "%"},
		{"abc%", "abc%"},
		{"%%", "%%"},
		{"%%N", "%%N"},
		{"%n %x %", "%n %x %"},
		{"100% %N", "100% github"},
		{"héllo %N ünï", "héllo github ünï"},
	}
	for _, tc := range cases {
		got := Format(tc.template, rec)
		assert.Equal(t, tc.want, string(got), "template=%q", tc.template)
	}
}

func TestFormatDoesNotReexpandFields(t *testing.T) {
	r := models.Record{Name: []byte("%P"), Link: []byte("%"), Username: []byte("%U"), Secret: []byte("s")}
	assert.Equal(t, "%P % %U s", string(Format("%N %L %U %P", r)))
}

func TestFormatReturnsFreshBuffer(t *testing.T) {
	out := Format("%P", rec)
	out[0] = 'z'
	assert.Equal(t, "Xy9%Nq", string(rec.Secret))
}

func TestExactFetchFieldsUnmodified(t *testing.T) {
	data := "- X old old old\n+ X l%N u%% p%\n"
	r, err := query.Exact(store.Parse([]byte(data)), "X")
	require.NoError(t, err)
	assert.Equal(t, "X|l%N|u%%|p%", string(Format("%N|%L|%U|%P", r)))
}
