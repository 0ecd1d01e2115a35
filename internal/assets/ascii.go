package assets

import "github.com/shvbsle/termrex/internal/sprite"

const (
	asciiTrexStyle   = "\x1b[1m"
	asciiCactusStyle = "\x1b[32m"
	asciiPteroStyle  = "\x1b[1;33m"
	asciiBannerStyle = "\x1b[1m"
)

var asciiTrexTop = []string{
	`            ____  `,
	`           /$o$$\_`,
	`           |$$$,-'`,
	`|\        /$$$|-  `,
	`|$\______/$$$$|   `,
	` \$$$$$$$$$$$$/   `,
}

var asciiTrexDownTop = []string{
	`                 ____  `,
	`|\______________/$o$$\_`,
	` \$$$$$$$$$$$$$$$$$,-' `,
}

func withRow(top []string, row string) []string {
	out := make([]string, 0, len(top)+1)
	out = append(out, top...)
	return append(out, row)
}

var asciiCacti = [][]string{
	{
		`  _  `,
		` |$| `,
		`_|$|_`,
		`\_$_/`,
		` |$| `,
	},
	{
		`   _   `,
		` _|$|  `,
		`|$|$| _`,
		`\_$$|/$`,
		`  |$|  `,
	},
	{
		` _   `,
		`|$|  `,
		`|$|_ `,
		`|$$_|`,
		`|$|  `,
	},
	{
		`  _    _  `,
		` |$|  |$|_`,
		`_|$| _|$|$`,
		`\_$|$\_$_/`,
		` |$|  |$| `,
	},
	{
		`   _  `,
		`  |$| `,
		`\_|$|_`,
		`  |$| `,
	},
}

var asciiPteroUp = []string{
	`     \\     `,
	`   __|\\___ `,
	`<(o_$$$$___>`,
	`     \/     `,
}

var asciiPteroDown = []string{
	`            `,
	`   __ ___   `,
	`<(o_$$$$___>`,
	`     |//    `,
}

var asciiIntroBanner = []string{
	` _____ ___ ___ __  __ ___ _____  __`,
	`|_   _| __| _ \  \/  | _ \ __\ \/ /`,
	`  | | | _||   / |\/| |   / _| >  < `,
	`  |_| |___|_|_\_|  |_|_|_\___/_/\_\`,
}

var asciiGameOverBanner = []string{
	`  ___   _   __  __ ___    _____   _____ ___ `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
}

var asciiDigits = [10][]string{
	{` ___  `, `/ _ \ `, `|(_)| `, `\___/ `},
	{` _    `, `/ |   `, `| |   `, `|_|   `},
	{` ___  `, `|_  ) `, ` / /  `, `/___| `},
	{` ____ `, `|__ / `, ` |_ \ `, `|___/ `},
	{` _ _  `, `| | | `, `|_  _|`, `  |_| `},
	{` ___  `, `| __| `, `|__ \ `, `|___/ `},
	{`  __  `, ` / /  `, `/ _ \ `, `\___/ `},
	{` ____ `, `|__  |`, `  / / `, ` /_/  `},
	{` ___  `, `( _ ) `, `/ _ \ `, `\___/ `},
	{` ___  `, `/ _ \ `, `\_, / `, ` /_/  `},
}

var asciiHi = []string{
	` _  _ ___ `,
	`| || |_ _|`,
	`| __ || | `,
	`|_||_|___|`,
}

var asciiRetry = RetryArt{
	First: []string{
		`,_________________,`,
		`|  __             |`,
		`|  \ \            |`,
		`|   \ \           |`,
		`|   / /  ______   |`,
		`|  /_/  |______|  |`,
		`|                 |`,
		`'-----------------'`,
	},
	Second: []string{
		`,_________________,`,
		`|     __          |`,
		`|  ___\ \   ,___  |`,
		`| / ,__  |  |_, \ |`,
		`| | | /_/     | | |`,
		`| | |_________| | |`,
		`| \_____________/ |`,
		`'-----------------'`,
	},
	Blink: []Offset{
		{5, 8}, {5, 9}, {5, 10}, {5, 11}, {5, 12}, {5, 13}, {5, 14}, {5, 15},
		{4, 9}, {4, 10}, {4, 11}, {4, 12}, {4, 13}, {4, 14},
	},
}

func newASCII() *Theme {
	digits := compileAll("ascii-digit-", "", asciiDigits[:]...)

	t := &Theme{
		Name: "ascii",
		Trex: TrexPack{
			Idle:  sprite.Compile("ascii-trex-idle", withRow(asciiTrexTop, `    |_|  |_|      `), asciiTrexStyle),
			Jump:  sprite.Compile("ascii-trex-jump", withRow(asciiTrexTop, `    /_/  \_\      `), asciiTrexStyle),
			Run1:  sprite.Compile("ascii-trex-run1", withRow(asciiTrexTop, `    |_|   \_\     `), asciiTrexStyle),
			Run2:  sprite.Compile("ascii-trex-run2", withRow(asciiTrexTop, `    /_/   |_|     `), asciiTrexStyle),
			Down1: sprite.Compile("ascii-trex-down1", withRow(asciiTrexDownTop, `   |_|  |_|            `), asciiTrexStyle),
			Down2: sprite.Compile("ascii-trex-down2", withRow(asciiTrexDownTop, `   /_/  \_\            `), asciiTrexStyle),
			Face: Face{
				Eye:        Offset{1, 13},
				EyeDown:    Offset{1, 18},
				Mouth:      Offset{2, 15},
				MouthDown:  Offset{2, 19},
				EyeGlyph:   "X",
				MouthLines: []string{"_-'"},
			},
			Physics: Physics{Gravity: 350, JumpImpulse: -164, MaxFall: 250},
		},
		Cacti: compileAll("ascii-cactus-", asciiCactusStyle, asciiCacti...),
		Pterodactyls: [][2]*sprite.Asset{{
			sprite.Compile("ascii-ptero-up", asciiPteroUp, asciiPteroStyle),
			sprite.Compile("ascii-ptero-down", asciiPteroDown, asciiPteroStyle),
		}},
		PteroLift:      3,
		IntroBanner:    sprite.Compile("ascii-intro-banner", asciiIntroBanner, asciiBannerStyle),
		GameOverBanner: sprite.Compile("ascii-game-over-banner", asciiGameOverBanner, asciiBannerStyle),
		Font: Font{
			Hi: sprite.Compile("ascii-hi", asciiHi, ""),
		},
		Retry: asciiRetry,
	}
	copy(t.Font.Digits[:], digits)
	return t
}
