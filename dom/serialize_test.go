package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blogem/keysubmit/models"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   models.Payload
	}{
		{
			name:   "empty form",
			markup: `<form id="f"></form>`,
			want:   models.Payload{},
		},
		{
			name:   "document order",
			markup: `<form id="f"><input name="secret" value="s"><input name="key" value="k"></form>`,
			want:   models.Payload{{Name: "secret", Value: "s"}, {Name: "key", Value: "k"}},
		},
		{
			name:   "empty values kept",
			markup: `<form id="f"><input name="key"></form>`,
			want:   models.Payload{{Name: "key", Value: ""}},
		},
		{
			name: "skipped controls",
			markup: `<form id="f">
				<input value="unnamed">
				<input name="off" value="x" disabled>
				<input type="checkbox" name="unchecked" value="y">
				<input type="submit" name="go" value="Go">
				<input type="reset" name="reset">
				<input type="image" name="img">
				<input type="file" name="upload">
				<button name="btn" value="b">B</button>
				<input type="hidden" name="kept" value="z">
			</form>`,
			want: models.Payload{{Name: "kept", Value: "z"}},
		},
		{
			name: "checkable defaults",
			markup: `<form id="f">
				<input type="checkbox" name="remember" checked>
				<input type="radio" name="side" value="buy">
				<input type="radio" name="side" value="sell" checked>
			</form>`,
			want: models.Payload{{Name: "remember", Value: "on"}, {Name: "side", Value: "sell"}},
		},
		{
			name: "select rules",
			markup: `<form id="f">
				<select name="first"><option disabled>x</option><option value="1">One</option></select>
				<select name="text"><option selected> Two  Words </option></select>
				<select name="multi" multiple><option selected>a</option><option>b</option><option selected disabled>c</option></select>
				<select name="grouped"><optgroup label="g" disabled><option selected>z</option></optgroup></select>
			</form>`,
			want: models.Payload{
				{Name: "first", Value: "1"},
				{Name: "text", Value: "Two Words"},
				{Name: "multi", Value: "a"},
			},
		},
		{
			name: "disabled fieldset",
			markup: `<form id="f">
				<fieldset disabled>
					<legend><input name="legend" value="l"></legend>
					<input name="inside" value="i">
				</fieldset>
				<input name="outside" value="o">
			</form>`,
			want: models.Payload{{Name: "legend", Value: "l"}, {Name: "outside", Value: "o"}},
		},
		{
			name: "form attribute owners",
			markup: `<input name="before" form="f" value="b">
				<form id="f"><input name="inner" value="i"><input name="elsewhere" form="other" value="e"></form>
				<textarea name="after" form="f">t</textarea>`,
			want: models.Payload{
				{Name: "before", Value: "b"},
				{Name: "inner", Value: "i"},
				{Name: "after", Value: "t"},
			},
		},
		{
			name:   "textarea newlines",
			markup: "<form id=\"f\"><textarea name=\"note\">a\nb\r\nc</textarea></form>",
			want:   models.Payload{{Name: "note", Value: "a\r\nb\r\nc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := mustForm(t, tt.markup, "f")
			if diff := cmp.Diff(tt.want, Serialize(form)); diff != "" {
				t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerialize_ReadsCurrentValues(t *testing.T) {
	form := mustForm(t, keyPage, "submit_key")

	if err := form.SetValue("key", "a b"); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	if got, want := Serialize(form).Encode(), "key=a+b&secret="; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	if err := form.SetValue("key", "abc123"); err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	if got, want := Serialize(form).Encode(), "key=abc123&secret="; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}
