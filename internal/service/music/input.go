package music

import "github.com/gulzeynep/GiftCapsule-web/internal/domain"

// AddSongInput holds the parameters for dropping a song into a jar.
type AddSongInput struct {
	JarType    *string
	SongName   *string
	ArtistName *string
	YouTubeURL *string
	AddedBy    *string
}

func (i AddSongInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		name  string
		value *string
	}{
		{"jar_type", i.JarType},
		{"song_name", i.SongName},
		{"artist_name", i.ArtistName},
		{"youtube_url", i.YouTubeURL},
		{"added_by", i.AddedBy},
	}
	for _, f := range required {
		if f.value == nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: domain.MsgMissingField})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
