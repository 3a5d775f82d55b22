package discord

type VoiceEventType string

const (
	VoiceEventDisconnected VoiceEventType = "voice_disconnected"
)

type VoiceEvent struct {
	Type    VoiceEventType
	GuildID string
}

var voiceEventBus = make(chan VoiceEvent, 16)

func PublishVoiceEvent(evt VoiceEvent) {
	select {
	case voiceEventBus <- evt:
	default:
		// avoid blocking; drop if too many events
	}
}

func VoiceEvents() <-chan VoiceEvent {
	return voiceEventBus
}
