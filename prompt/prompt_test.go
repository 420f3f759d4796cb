package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/keysubmit/dom"
)

type scriptedDriver struct {
	answers  map[string]string
	asked    []string
	password []string
	err      error
}

func (d *scriptedDriver) Input(_ context.Context, message, _ string) (string, error) {
	d.asked = append(d.asked, message)
	return d.answers[message], d.err
}

func (d *scriptedDriver) Password(_ context.Context, message string) (string, error) {
	d.password = append(d.password, message)
	return d.answers[message], d.err
}

const page = `<form id="submit_key">
	<input type="hidden" name="csrf" value="">
	<input name="key" value="">
	<input name="preset" value="kept">
	<input type="password" name="secret">
	<input type="checkbox" name="remember">
	<input name="off" disabled>
	<textarea name="note"></textarea>
</form>`

func TestFillMissing(t *testing.T) {
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	form, err := doc.Form("submit_key")
	require.NoError(t, err)

	driver := &scriptedDriver{answers: map[string]string{
		"key:":    "abc123",
		"secret:": "s3cr3t",
		"note:":   "hello",
	}}

	require.NoError(t, FillMissing(context.Background(), form, driver))

	assert.Equal(t, []string{"key:", "note:"}, driver.asked)
	assert.Equal(t, []string{"secret:"}, driver.password)
	assert.Equal(t, "csrf=&key=abc123&preset=kept&secret=s3cr3t&note=hello", dom.Serialize(form).Encode())
}

func TestFillMissing_Aborted(t *testing.T) {
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	form, err := doc.Form("submit_key")
	require.NoError(t, err)

	err = FillMissing(context.Background(), form, &scriptedDriver{err: ErrAborted})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestFillMissing_RepeatedNames(t *testing.T) {
	doc, err := dom.ParseString(`<form id="submit_key">
	<input name="tag">
	<input name="tag" value="fixed">
	<input name="tag">
</form>`)
	require.NoError(t, err)
	form, err := doc.Form("submit_key")
	require.NoError(t, err)

	driver := &scriptedDriver{answers: map[string]string{
		"tag (1 of 3):": "a1",
		"tag (3 of 3):": "a3",
	}}

	require.NoError(t, FillMissing(context.Background(), form, driver))

	assert.Equal(t, []string{"tag (1 of 3):", "tag (3 of 3):"}, driver.asked)
	assert.Equal(t, "tag=a1&tag=fixed&tag=a3", dom.Serialize(form).Encode())
}
