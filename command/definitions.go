package command

import "github.com/bwmarrin/discordgo"

// All four commands are moderator-only; Discord hides them from members
// without Manage Server.
var moderatorOnly int64 = discordgo.PermissionManageServer

// Definitions returns the application commands the bot registers on its guild.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "close",
			Description:              "Close this conversation and forget the attached user.",
			DefaultMemberPermissions: &moderatorOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "codename",
					Description: "The codename. Must be an exact match.",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:                     "block",
			Description:              "Block a user from using the bot.",
			DefaultMemberPermissions: &moderatorOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "codename",
					Description: "The codename. Must be an exact match.",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:                     "inbox",
			Description:              "Manage the channel threads will be added to.",
			DefaultMemberPermissions: &moderatorOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "set",
					Description: "Set the channel.",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:         "channel",
							Description:  "The channel to be used. Must allow threads.",
							Type:         discordgo.ApplicationCommandOptionChannel,
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
							Required:     true,
						},
					},
				},
				{
					Name:        "unset",
					Description: "Unset the channel.",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
		{
			Name:                     "blockrole",
			Description:              "Manage the role given to blocked users.",
			DefaultMemberPermissions: &moderatorOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "set",
					Description: "Set the role.",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "role",
							Description: "The role to be used.",
							Type:        discordgo.ApplicationCommandOptionRole,
							Required:    true,
						},
					},
				},
				{
					Name:        "unset",
					Description: "Unset the role.",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}
