package dashboard

import (
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/swifttickets/ticketdash/internal/api"
)

const oauthAuthorizeURL = "https://discord.com/api/oauth2/authorize"

// invitePermissions is what the bot needs to run tickets: manage channels,
// read/send/history and attachments (101392). The web backend's INVITE_PERMS
// comment names the same set, but its literal mask evaluates to 8000, which
// lacks manage channels.
var invitePermissions = int64(discordgo.PermissionManageChannels |
	discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory |
	discordgo.PermissionAttachFiles)

// InviteURL builds the OAuth2 bot-install URL for a guild.
func InviteURL(appID string, guildID api.ID) string {
	q := url.Values{}
	q.Set("client_id", appID)
	q.Set("permissions", strconv.FormatInt(invitePermissions, 10))
	q.Set("scope", "bot applications.commands")
	if guildID != "" {
		q.Set("guild_id", string(guildID))
		q.Set("disable_guild_select", "true")
	}
	return oauthAuthorizeURL + "?" + q.Encode()
}
