// Package render turns a resolved profile card into the social preview page.
package render

import (
	"bytes"
	"html/template"
	"io/fs"

	"biolink/internal/domain/entity"

	"github.com/pkg/errors"
)

// metaBlock replaces the placeholder title. html/template escapes every value
// for its position, so bios and usernames cannot break out of the markup.
var metaBlock = template.Must(template.New("meta").Parse(
	`<title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}" />
    <meta property="og:type" content="profile" />
    <meta property="og:title" content="{{.Title}}" />
    <meta property="og:description" content="{{.Description}}" />
    <meta property="og:image" content="{{.Image}}" />
    <meta name="twitter:card" content="summary_large_image" />
    <meta name="twitter:title" content="{{.Title}}" />
    <meta name="twitter:description" content="{{.Description}}" />
    <meta name="twitter:image" content="{{.Image}}" />
    <link rel="icon" type="image/png" href="{{.Image}}" />`,
))

// MetaTagRenderer injects card meta tags into the card page template.
type MetaTagRenderer struct {
	fsys         fs.FS
	templateName string
	placeholder  []byte
}

// NewMetaTagRenderer reads templateName from fsys on every render, so the page
// can be edited without a restart.
func NewMetaTagRenderer(fsys fs.FS, templateName, placeholder string) *MetaTagRenderer {
	return &MetaTagRenderer{
		fsys:         fsys,
		templateName: templateName,
		placeholder:  []byte(placeholder),
	}
}

// Render returns the card page with the first placeholder replaced by the
// meta block. A page without the placeholder is returned unchanged.
func (r *MetaTagRenderer) Render(card entity.Card) ([]byte, error) {
	page, err := fs.ReadFile(r.fsys, r.templateName)
	if err != nil {
		return nil, errors.Wrapf(err, "read card template %s", r.templateName)
	}

	block, err := r.MetaBlock(card)
	if err != nil {
		return nil, err
	}

	return bytes.Replace(page, r.placeholder, block, 1), nil
}

// MetaBlock renders only the escaped meta tags for card.
func (r *MetaTagRenderer) MetaBlock(card entity.Card) ([]byte, error) {
	var buf bytes.Buffer
	if err := metaBlock.Execute(&buf, card); err != nil {
		return nil, errors.Wrap(err, "render meta block")
	}

	return buf.Bytes(), nil
}
