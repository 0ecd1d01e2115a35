package assets

import "github.com/shvbsle/termrex/internal/sprite"

const (
	unicodeTrexStyle   = "\x1b[1m"
	unicodeCactusStyle = "\x1b[32m"
	unicodePteroStyle  = "\x1b[1;33m"
	unicodeBannerStyle = "\x1b[1m"
)

var unicodeTrexTop = []string{
	"           ▄██████▄ ",
	"           ██▄█████ ",
	"▌          ████▀▀▀▀ ",
	"██▄     ▄██████▀▀   ",
	" ▀████████████      ",
}

var unicodeTrexDownTop = []string{
	"                 ▄██████▄ ",
	"▀██▄▄▄▄▄▄▄▄▄▄▄▄▄▄██▄█████ ",
	"  ▀██████████████████▀▀▀▀ ",
}

var unicodeCacti = [][]string{
	{
		"  ▄  ",
		"█ █ ▄",
		"▀▀█▀▀",
		"  █  ",
	},
	{
		"  ▄   ",
		"▄ █ █ ",
		"█▄█▄▀ ",
		"  █   ",
		"  █   ",
	},
	{
		"  ▄    ▄  ",
		"█ █  █ █ █",
		"▀▀█▀ ▀▀█▀▀",
		"  █    █  ",
	},
	{
		" ▄  ",
		" █ ▄",
		"▀█▀▀",
		" █  ",
	},
}

var unicodePteroUp = []string{
	"     ▄      ",
	"  ▄  █▄     ",
	"▀██▄▄███▄▄▄▀",
	"            ",
}

var unicodePteroDown = []string{
	"            ",
	"  ▄         ",
	"▀██▄▄███▄▄▄▀",
	"     █▀     ",
}

var unicodeIntroBanner = []string{
	"▀█▀ █▀▀ █▀█ █▄ ▄█ █▀█ █▀▀ █ █",
	" █  █▀▀ █▀▄ █ ▀ █ █▀▄ █▀▀ ▄▀▄",
	" ▀  ▀▀▀ ▀ ▀ ▀   ▀ ▀ ▀ ▀▀▀ ▀ ▀",
}

var unicodeGameOverBanner = []string{
	"█▀▀ ▄▀▄ █▄ ▄█ █▀▀    █▀█ █ █ █▀▀ █▀█",
	"█ █ █▀█ █ ▀ █ █▀▀    █ █ ▀▄▀ █▀▀ █▀▄",
	"▀▀▀ ▀ ▀ ▀   ▀ ▀▀▀    ▀▀▀  ▀  ▀▀▀ ▀ ▀",
}

var unicodeDigits = [10][]string{
	{"█▀█ ", "█ █ ", "▀▀▀ "},
	{"▀█  ", " █  ", "▀▀▀ "},
	{"▀▀█ ", "█▀▀ ", "▀▀▀ "},
	{"▀▀█ ", " ▀█ ", "▀▀▀ "},
	{"█ █ ", "▀▀█ ", "  ▀ "},
	{"█▀▀ ", "▀▀█ ", "▀▀▀ "},
	{"█▀▀ ", "█▀█ ", "▀▀▀ "},
	{"▀▀█ ", "  █ ", "  ▀ "},
	{"█▀█ ", "█▀█ ", "▀▀▀ "},
	{"█▀█ ", "▀▀█ ", "▀▀▀ "},
}

var unicodeHi = []string{
	"█ █ ▀█▀ ",
	"█▀█  █  ",
	"▀ ▀ ▀▀▀ ",
}

var unicodeRetry = RetryArt{
	First: []string{
		"┌────────────────────┐",
		"│    ▄▄              │",
		"│    ██▀▄▄           │",
		"│    ██  ▀█▄         │",
		"│    ██▄▄▀▀          │",
		"│    ▀▀              │",
		"│        ▄▄▄▄▄▄      │",
		"└────────────────────┘",
	},
	Second: []string{
		"┌────────────────────┐",
		"│      ▄▄▄▄▄▄  ▄     │",
		"│    ▄█▀    ▀███     │",
		"│    ██      ▀▀█     │",
		"│    ██              │",
		"│    ▀█▄      ▄█▀    │",
		"│      ▀▀▀▀▀▀▀▀      │",
		"└────────────────────┘",
	},
	Blink: []Offset{
		{6, 9}, {6, 10}, {6, 11}, {6, 12}, {6, 13}, {6, 14},
	},
	Inverse: true,
}

func newUnicode() *Theme {
	digits := compileAll("unicode-digit-", "", unicodeDigits[:]...)

	t := &Theme{
		Name: "unicode",
		Trex: TrexPack{
			Idle:  sprite.Compile("unicode-trex-idle", withRow(unicodeTrexTop, "   ▀█▀  ▀█▀        "), unicodeTrexStyle),
			Jump:  sprite.Compile("unicode-trex-jump", withRow(unicodeTrexTop, "   ▀█▀  ▀█▀        "), unicodeTrexStyle),
			Run1:  sprite.Compile("unicode-trex-run1", withRow(unicodeTrexTop, "   █▄   ▀▀         "), unicodeTrexStyle),
			Run2:  sprite.Compile("unicode-trex-run2", withRow(unicodeTrexTop, "   ▀▀   █▄         "), unicodeTrexStyle),
			Down1: sprite.Compile("unicode-trex-down1", withRow(unicodeTrexDownTop, "    ▀█▀  ▀█▀              "), unicodeTrexStyle),
			Down2: sprite.Compile("unicode-trex-down2", withRow(unicodeTrexDownTop, "    █▄   ▀▀               "), unicodeTrexStyle),
			Face: Face{
				Eye:        Offset{1, 13},
				EyeDown:    Offset{1, 19},
				Mouth:      Offset{2, 15},
				MouthDown:  Offset{2, 21},
				EyeGlyph:   "x",
				MouthLines: []string{"▄▄▄▄"},
			},
			Physics: Physics{Gravity: 300, JumpImpulse: -114, MaxFall: 250},
		},
		Cacti: compileAll("unicode-cactus-", unicodeCactusStyle, unicodeCacti...),
		Pterodactyls: [][2]*sprite.Asset{{
			sprite.Compile("unicode-ptero-up", unicodePteroUp, unicodePteroStyle),
			sprite.Compile("unicode-ptero-down", unicodePteroDown, unicodePteroStyle),
		}},
		PteroLift:      2,
		IntroBanner:    sprite.Compile("unicode-intro-banner", unicodeIntroBanner, unicodeBannerStyle),
		GameOverBanner: sprite.Compile("unicode-game-over-banner", unicodeGameOverBanner, unicodeBannerStyle),
		Font: Font{
			Hi: sprite.Compile("unicode-hi", unicodeHi, ""),
		},
		Retry: unicodeRetry,
	}
	copy(t.Font.Digits[:], digits)
	return t
}
