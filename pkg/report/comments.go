package report

import (
	"github.com/Sumatoshi-tech/termwrapped/pkg/complexity"
)

// Command count thresholds for CommandCountComment (exclusive upper bounds).
const (
	countHatchling = 20
	countSprout    = 100
	countLiftoff   = 500
	countTrainee   = 1000
	countPowerUser = 5000
	countVirtuoso  = 15000
)

// CommandCountComment comments on the size of the history.
func CommandCountComment(total int) string {
	switch {
	case total < countHatchling:
		return "🐣 Just hatched! Everyone starts somewhere..."
	case total < countSprout:
		return "🌱 Growing terminal-ist! The journey of a thousand commands begins with a single keystroke."
	case total < countLiftoff:
		return "🚀 Houston, we have lift-off! Your terminal journey is taking shape."
	case total < countTrainee:
		return "🎮 Terminal warrior in training! Vi would be proud."
	case total < countPowerUser:
		return "⚡ Power user alert! Your keyboard is probably glowing."
	case total < countVirtuoso:
		return "🔥 Terminal virtuoso! Your fingers probably dream in bash."
	default:
		return "🧙 You're basically Gandalf the Grey of the terminal! 'YOU SHALL NOT GUI!'"
	}
}

// TopCommandComment comments on the favourite base command.
func TopCommandComment(base string) string {
	switch base {
	case "git":
		return "🤔 Ah, a fellow time traveler! Making history, one commit at a time."
	case "cd":
		return "🏃 Can't sit still, can you? A true directory explorer!"
	case "nvim", "vim", "vi":
		return "🎹 A vim virtuoso! Escape key is probably worn out."
	case "ls":
		return "👀 Someone likes to know what's going on!"
	case "rm":
		return "☠️ Living dangerously, I see! Hope you have backups..."
	case "make":
		return "🏗️ Building things, breaking things, it's all in a day's work!"
	case "docker", "kubectl":
		return "🐳 Containers all the way down!"
	case "go", "cargo", "npm":
		return "📦 Shipping code like it's going out of style!"
	default:
		return "This command must feel like home by now!"
	}
}

// ComplexityComment comments on a complexity score.
func ComplexityComment(score int) string {
	switch complexity.LevelOf(score) {
	case complexity.LevelSimple:
		return "💫 Simple and sweet!"
	case complexity.LevelFancy:
		return "🎭 Getting fancy there!"
	case complexity.LevelJuggling:
		return "🎪 Now we're juggling with characters!"
	case complexity.LevelRoyalty:
		return "🌟 Regular expression royalty!"
	default:
		return "🎯 Maximum complexity achieved! Perl would be proud!"
	}
}

// Hour boundaries for HourComment.
const (
	hourDawn      = 5
	hourMorning   = 8
	hourLunch     = 12
	hourAfternoon = 14
	hourEvening   = 18
	hourNight     = 22
)

// HourComment comments on the busiest hour.
func HourComment(hour, count int) string {
	switch {
	case hour < hourDawn && count > 0:
		return "🦉 Night owl alert! Bug hunting in the dark?"
	case hour >= hourDawn && hour < hourMorning && count > 0:
		return "🌅 Early bird gets the code merged!"
	case hour >= hourMorning && hour < hourLunch:
		return "☕ Coffee-powered coding session!"
	case hour >= hourLunch && hour < hourAfternoon:
		return "🍜 Lunch break coding warrior!"
	case hour >= hourAfternoon && hour < hourEvening:
		return "⚡ Peak productivity power hour!"
	case hour >= hourEvening && hour < hourNight:
		return "🌙 Evening excellence!"
	default:
		return "🌚 Midnight commander!"
	}
}

// AliasComment comments on how well the defined aliases are used.
func AliasComment(defined, used int) string {
	switch {
	case defined == 0:
		return "🙈 No aliases? You must love typing."
	case used == 0:
		return "🪦 A graveyard of aliases. Not a single one was used!"
	case used == defined:
		return "🏆 Every alias pulls its weight. Impressive!"
	case used*2 >= defined:
		return "👍 Most of your aliases earn their keep."
	default:
		return "🧹 Time for some spring cleaning in your shell config?"
	}
}
