// Package export renders a user's links as CSV and PDF documents.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"urlpro/internal/types"
)

const timeLayout = "2006-01-02 15:04"

var csvHeader = []string{"Original URL", "Short URL", "Title", "Clicks", "Unique Clicks", "Created", "Expires"}

func WriteCSV(w io.Writer, urls []types.ShortURL, baseURL string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range urls {
		u := &urls[i]
		expires := ""
		if u.ExpiresAt != nil {
			expires = u.ExpiresAt.UTC().Format(timeLayout)
		}
		record := []string{
			u.OriginalURL,
			u.Link(baseURL),
			u.Title,
			strconv.FormatInt(u.ClickCount, 10),
			strconv.FormatInt(u.UniqueClicks, 10),
			u.CreatedAt.UTC().Format(timeLayout),
			expires,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
