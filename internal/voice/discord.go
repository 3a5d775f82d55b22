package voice

import (
	"github.com/bwmarrin/discordgo"
)

// discordConn adapts *discordgo.VoiceConnection to the Conn interface.
type discordConn struct {
	vc *discordgo.VoiceConnection
}

func (c *discordConn) ChannelID() string {
	return c.vc.ChannelID
}

func (c *discordConn) Speaking(b bool) error {
	return c.vc.Speaking(b)
}

func (c *discordConn) OpusSend() chan<- []byte {
	return c.vc.OpusSend
}

func (c *discordConn) Disconnect() error {
	return c.vc.Disconnect()
}

// NewDiscordJoiner joins voice channels through a discordgo session,
// muted for receive since the bot only speaks.
func NewDiscordJoiner(s *discordgo.Session) Joiner {
	return JoinerFunc(func(guildID, channelID string) (Conn, error) {
		vc, err := s.ChannelVoiceJoin(guildID, channelID, false, true)
		if err != nil {
			return nil, err
		}
		return &discordConn{vc: vc}, nil
	})
}
