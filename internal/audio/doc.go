// Package audio writes ID3 tags to downloaded MP3 files.
//
// Playlist downloads land in one folder per playlist; [Tagger] records that folder name as the album so
// music players group the tracks together:
//
//	tagger := audio.NewTagger()
//	err := tagger.TagAlbum("Playlist Downloads/Road_Trip/Song.mp3", "Road_Trip")
//
// Only MP3 output is tagged. Other codecs are skipped with [ErrUnsupportedFile].
package audio
