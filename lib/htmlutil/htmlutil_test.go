package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestVisibleText(t *testing.T) {
	page := `<html><head><title>ignored</title><style>.a{}</style></head>
<body>
  <div>Bitmain<span>Antminer S21</span></div>
  <script>var hidden = "$1 /day";</script>
  <!-- comment -->
  <p>$5.00   /day</p>
</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	text := VisibleText(doc)
	require.Equal(t, "Bitmain Antminer S21 $5.00 /day", text)
}
