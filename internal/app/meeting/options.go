package meeting

import "meetgate/internal/app/user"

// WidgetOptions are the initialization options of the embedded conferencing widget.
// The UI passes them unchanged to the external API constructor.
type WidgetOptions struct {
	RoomName                 string         `json:"roomName"`
	JWT                      string         `json:"jwt"`
	UserInfo                 WidgetUserInfo `json:"userInfo"`
	ConfigOverwrite          map[string]any `json:"configOverwrite"`
	InterfaceConfigOverwrite map[string]any `json:"interfaceConfigOverwrite"`
}

// WidgetUserInfo is the "userInfo" widget option.
type WidgetUserInfo struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

var (
	moderatorToolbar = []string{
		"microphone", "camera", "closedcaptions", "desktop", "fullscreen",
		"fodeviceselection", "hangup", "profile", "chat", "recording",
		"settings", "raisehand", "videoquality", "filmstrip", "invite",
		"tileview", "select-background", "help", "mute-everyone",
	}

	participantToolbar = []string{
		"microphone", "camera", "closedcaptions", "fullscreen",
		"fodeviceselection", "hangup", "profile", "settings", "raisehand",
		"videoquality", "filmstrip", "tileview", "select-background",
	}
)

// newWidgetOptions builds the widget options for a session. Participants get a reduced
// toolbar and cannot invite others.
func newWidgetOptions(token, room string, id user.Identity) WidgetOptions {
	config := map[string]any{
		"startWithAudioMuted":       true,
		"disableModeratorIndicator": true,
		"enableEmailInStats":        false,
		"enableWelcomePage":         false,
		"prejoinPageEnabled":        false,
		"disableDeepLinking":        true,
		"disableThirdPartyRequests": true,
		"analytics":                 map[string]any{"disabled": true},
	}

	toolbar := moderatorToolbar
	if !id.Role.IsModerator() {
		config["disableInviteFunctions"] = true
		config["doNotStoreRoom"] = true
		toolbar = participantToolbar
	}

	return WidgetOptions{
		RoomName: room,
		JWT:      token,
		UserInfo: WidgetUserInfo{
			DisplayName: id.DisplayName,
			Email:       id.Email,
		},
		ConfigOverwrite: config,
		InterfaceConfigOverwrite: map[string]any{
			"DISABLE_JOIN_LEAVE_NOTIFICATIONS":   true,
			"SHOW_JITSI_WATERMARK":               false,
			"SHOW_WATERMARK_FOR_GUESTS":          false,
			"SHOW_BRAND_WATERMARK":               false,
			"APP_NAME":                           "Virtual Classroom",
			"DEFAULT_BACKGROUND":                 "#0F172A",
			"DISABLE_DOMINANT_SPEAKER_INDICATOR": true,
			"DISABLE_TRANSCRIPTION_SUBTITLES":    true,
			"DISABLE_RINGING":                    true,
			"HIDE_INVITE_MORE_HEADER":            true,
			"TOOLBAR_BUTTONS":                    append([]string(nil), toolbar...),
		},
	}
}
