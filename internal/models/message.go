package models

// Colour values used for embeds
const (
	ColourBlue       = 3447003
	ColourPurple     = 10181046
	ColourDarkGreen  = 2067276
	ColourDarkBlue   = 2123412
	ColourDarkOrange = 11027200
	ColourDarkRed    = 10038562
	ColourPink       = 16580705
)

// Message is platform independent outbound content. Content and Embed may
// both be set, in which case the text is shown above the embed.
type Message struct {
	Content string
	Embed   *Embed
}

// Embed is a block of rich content
type Embed struct {
	Title       string
	Description string
	Colour      int
	Fields      []*EmbedField
}

// EmbedField is a named section of an embed
type EmbedField struct {
	Name  string
	Value string
}

// Text returns the visible text of a message, joining content and embed parts.
func (m *Message) Text() string {
	if m == nil {
		return ""
	}

	text := m.Content
	if m.Embed == nil {
		return text
	}

	for _, part := range []string{m.Embed.Title, m.Embed.Description} {
		if part == "" {
			continue
		}
		if text != "" {
			text += "\n"
		}
		text += part
	}

	for _, field := range m.Embed.Fields {
		if text != "" {
			text += "\n"
		}
		text += field.Name + " " + field.Value
	}

	return text
}
