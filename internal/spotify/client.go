package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	apiBaseURL = "https://api.spotify.com/v1"
	tokenURL   = "https://accounts.spotify.com/api/token"

	// Autocomplete shows at most this many candidates
	searchLimit = 8
)

var trackIDPattern = regexp.MustCompile(`track/([A-Za-z0-9]+)`)

// Track is one autocomplete candidate offered to the player
type Track struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	AlbumName    string `json:"albumName"`
	ArtistsLabel string `json:"artistsLabel"`
	ArtworkURL   string `json:"artworkURL"`
	URL          string `json:"url"`
}

// TrackMeta is the song and album behind a Spotify track URL, used by the
// curator tooling to verify answer keys
type TrackMeta struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Album   string `json:"album"`
	Artists string `json:"artists"`
}

// Client is a Spotify Web API client using the client-credentials flow.
// The oauth2 transport caches the app token and refreshes it before expiry.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Spotify client for the given application credentials
func NewClient(clientID, clientSecret string) *Client {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	return &Client{
		httpClient: cfg.Client(context.Background()),
		baseURL:    apiBaseURL,
	}
}

// Search returns up to searchLimit candidate tracks for a free-text query.
// An empty query yields an empty list without calling the API.
func (c *Client) Search(ctx context.Context, query string) ([]Track, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprintf("%d", searchLimit))

	result := &searchResponse{}
	if err := c.get(ctx, fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode()), result); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(result.Tracks.Items))
	for _, item := range result.Tracks.Items {
		tracks = append(tracks, toTrack(item))
	}
	return tracks, nil
}

// TrackMetaByURL resolves a Spotify track URL to its song and album names
func (c *Client) TrackMetaByURL(ctx context.Context, trackURL string) (*TrackMeta, error) {
	match := trackIDPattern.FindStringSubmatch(trackURL)
	if match == nil {
		return nil, fmt.Errorf("invalid track URL: %s", trackURL)
	}

	item := &trackItem{}
	if err := c.get(ctx, fmt.Sprintf("%s/tracks/%s", c.baseURL, match[1]), item); err != nil {
		return nil, err
	}

	return &TrackMeta{
		ID:      item.ID,
		Name:    item.Name,
		Album:   item.Album.Name,
		Artists: artistsLabel(item.Artists),
	}, nil
}

// get performs an authenticated GET and decodes the JSON response
func (c *Client) get(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// Wire types for the Spotify API

type searchResponse struct {
	Tracks struct {
		Items []trackItem `json:"items"`
	} `json:"tracks"`
}

type trackItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func toTrack(item trackItem) Track {
	track := Track{
		ID:           item.ID,
		Title:        item.Name,
		AlbumName:    item.Album.Name,
		ArtistsLabel: artistsLabel(item.Artists),
		URL:          item.ExternalURLs.Spotify,
	}
	if len(item.Album.Images) > 0 {
		track.ArtworkURL = item.Album.Images[0].URL
	}
	return track
}

func artistsLabel(artists []struct {
	Name string `json:"name"`
}) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
