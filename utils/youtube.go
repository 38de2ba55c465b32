package utils

import (
	"errors"
	"fmt"
	"regexp"
)

// YouTube video ids are exactly 11 characters
const videoIDLength = 11

// Ordered matchers for the recognized URL shapes. The capture stops at the
// first &, newline, ? or # so trailing query parameters don't leak into the id.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

var ErrInvalidYouTubeURL = errors.New("Invalid YouTube URL. Please use formats like: https://www.youtube.com/watch?v=VIDEO_ID or https://youtu.be/VIDEO_ID")

type YouTubeVideoInfo struct {
	VideoID      string `json:"videoId"`
	ThumbnailURL string `json:"thumbnailUrl"`
	EmbedURL     string `json:"embedUrl"`
}

// ExtractYouTubeVideoID extracts the video id from watch, share, embed and /v/
// URL shapes. Returns "" when nothing matches.
func ExtractYouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}

	for _, pattern := range youtubePatterns {
		if match := pattern.FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
			return match[1]
		}
	}

	return ""
}

// IsValidYouTubeURL reports whether url carries an 11-character video id
func IsValidYouTubeURL(url string) bool {
	return len(ExtractYouTubeVideoID(url)) == videoIDLength
}

// GetYouTubeVideoInfo resolves a YouTube URL to its canonical video id,
// thumbnail URL and embed URL. A URL without a recognizable 11-character id
// yields ErrInvalidYouTubeURL; the function never panics on any input.
func GetYouTubeVideoInfo(url string) (*YouTubeVideoInfo, error) {
	videoID := ExtractYouTubeVideoID(url)
	if len(videoID) != videoIDLength {
		return nil, ErrInvalidYouTubeURL
	}

	return &YouTubeVideoInfo{
		VideoID:      videoID,
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID),
		EmbedURL:     fmt.Sprintf("https://www.youtube.com/embed/%s", videoID),
	}, nil
}
