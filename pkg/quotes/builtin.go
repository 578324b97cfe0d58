package quotes

// Builtin returns the pack compiled into the binary, used when no pack
// file is configured or the configured one fails to load.
func Builtin() []Quote {
	return []Quote{
		{Text: "Verily, with hardship comes ease.", Source: "Quran 94:6"},
		{Text: "Indeed, Allah is with the patient.", Source: "Quran 2:153"},
		{Text: "So remember Me; I will remember you.", Source: "Quran 2:152"},
		{Text: "The best among you are those who have the best manners and character.", Source: "Sahih al-Bukhari"},
		{Text: "None of you truly believes until he loves for his brother what he loves for himself.", Source: "Sahih al-Bukhari"},
		{Text: "Make things easy and do not make them difficult.", Source: "Sahih al-Bukhari"},
		{Text: "The strong is not the one who overcomes people by his strength, but the one who controls himself while in anger.", Source: "Sahih al-Bukhari"},
		{Text: "Whoever believes in Allah and the Last Day should speak a good word or remain silent.", Source: "Sahih al-Bukhari"},
		{Text: "And whoever puts their trust in Allah, then He alone is sufficient for them.", Source: "Quran 65:3"},
		{Text: "Do not lose hope, nor be sad.", Source: "Quran 3:139"},
		{Text: "Allah does not burden a soul beyond that it can bear.", Source: "Quran 2:286"},
		{Text: "Kindness is a mark of faith, and whoever is not kind has no faith.", Source: "Sahih Muslim"},
		{Text: "The most beloved deeds to Allah are those done regularly, even if small.", Source: "Sahih al-Bukhari"},
		{Text: "And He found you lost and guided you.", Source: "Quran 93:7"},
	}
}
