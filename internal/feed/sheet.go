package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"anthyakshari/internal/models"
)

// Sheet column headers as published by the curator's spreadsheet
const (
	colDate       = "Date"
	colHintNumber = "HintNumber"
	colClue       = "Clue"
	colSongName   = "Song Name"
	colAlbumName  = "Album Name"
	colSongLink   = "Song Link"
	colAudioLink  = "Audio Hint Link"
)

// SheetFeed loads daily puzzles from published spreadsheet tabs, one CSV
// export URL per language. The parsed rows for a language are cached for the
// calendar day so gameplay does not refetch the sheet on every request.
type SheetFeed struct {
	urls       map[string]string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]*cachedRows
}

type cachedRows struct {
	rows      []sheetRow
	fetchedOn string // date the rows were fetched, cache expires daily
}

// sheetRow is one raw spreadsheet row before date filtering
type sheetRow struct {
	date       string
	hintNumber int
	clue       string
	songName   string
	albumName  string
	songLink   string
	audioLink  string
}

// NewSheetFeed creates a feed over the given language -> CSV URL map
func NewSheetFeed(urls map[string]string) *SheetFeed {
	return &SheetFeed{
		urls: urls,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: make(map[string]*cachedRows),
	}
}

// PuzzleFor returns the hint sequence for a language and date, sorted
// ascending by hint number. A language without a configured URL, or a date
// with no rows, yields a puzzle with no hints — "no puzzle today".
func (f *SheetFeed) PuzzleFor(ctx context.Context, language, date string) (*models.Puzzle, error) {
	url, ok := f.urls[language]
	if !ok || url == "" {
		return &models.Puzzle{Language: language, Date: date}, nil
	}

	rows, err := f.rowsFor(ctx, language, url, date)
	if err != nil {
		return nil, err
	}

	var dayRows []sheetRow
	for _, row := range rows {
		if row.date == date {
			dayRows = append(dayRows, row)
		}
	}

	sort.Slice(dayRows, func(i, j int) bool {
		return dayRows[i].hintNumber < dayRows[j].hintNumber
	})

	puzzle := &models.Puzzle{Language: language, Date: date}
	for _, row := range dayRows {
		puzzle.Hints = append(puzzle.Hints, models.HintRecord{
			HintNumber: row.hintNumber,
			ClueText:   row.clue,
			AudioURL:   row.audioLink,
			SongName:   row.songName,
			AlbumName:  row.albumName,
			SongURL:    row.songLink,
		})
	}

	return puzzle, nil
}

// rowsFor returns the cached sheet rows for a language, refetching once the
// cached copy is from an earlier day
func (f *SheetFeed) rowsFor(ctx context.Context, language, url, date string) ([]sheetRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cached, ok := f.cache[language]; ok && cached.fetchedOn == date {
		return cached.rows, nil
	}

	rows, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	f.cache[language] = &cachedRows{rows: rows, fetchedOn: date}
	return rows, nil
}

// fetch downloads and parses one published CSV tab
func (f *SheetFeed) fetch(ctx context.Context, url string) ([]sheetRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating sheet request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet fetch failed with status %d", resp.StatusCode)
	}

	return parseSheet(resp.Body)
}

// parseSheet reads the CSV export: a header row naming the columns, then one
// row per hint. Rows with an unparseable hint number are skipped rather than
// failing the whole sheet.
func parseSheet(r io.Reader) ([]sheetRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing sheet CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, header := range records[0] {
		index[strings.TrimSpace(header)] = i
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []sheetRow
	for _, record := range records[1:] {
		hintNumber, err := strconv.Atoi(cell(record, colHintNumber))
		if err != nil || hintNumber < 1 {
			continue
		}

		rows = append(rows, sheetRow{
			date:       cell(record, colDate),
			hintNumber: hintNumber,
			clue:       cell(record, colClue),
			songName:   cell(record, colSongName),
			albumName:  cell(record, colAlbumName),
			songLink:   cell(record, colSongLink),
			audioLink:  cell(record, colAudioLink),
		})
	}

	return rows, nil
}
