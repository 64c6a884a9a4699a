package models

// AvatarCatalog - предопределённые аватары, назначаются по кругу при добавлении участника.
var AvatarCatalog = []Avatar{
	{ID: 1, Emoji: "⚽", Color: "#667eea"},
	{ID: 2, Emoji: "🎮", Color: "#764ba2"},
	{ID: 3, Emoji: "🏆", Color: "#f59e0b"},
	{ID: 4, Emoji: "⭐", Color: "#10b981"},
	{ID: 5, Emoji: "🔥", Color: "#ef4444"},
	{ID: 6, Emoji: "👑", Color: "#8b5cf6"},
	{ID: 7, Emoji: "💎", Color: "#06b6d4"},
	{ID: 8, Emoji: "🎯", Color: "#ec4899"},
	{ID: 9, Emoji: "🚀", Color: "#6366f1"},
	{ID: 10, Emoji: "⚡", Color: "#eab308"},
	{ID: 11, Emoji: "🏅", Color: "#14b8a6"},
	{ID: 12, Emoji: "🎪", Color: "#a855f7"},
	{ID: 13, Emoji: "🌟", Color: "#f97316"},
	{ID: 14, Emoji: "💪", Color: "#84cc16"},
	{ID: 15, Emoji: "🎲", Color: "#0ea5e9"},
	{ID: 16, Emoji: "🎨", Color: "#f43f5e"},
}

// AvatarFor returns the catalog avatar for the i-th participant.
func AvatarFor(i int) Avatar {
	return AvatarCatalog[i%len(AvatarCatalog)]
}

const logoBaseURL = "https://crests.football-data.org/"

// ClubCatalog - полный пул клубов. Пул доступных клубов восстанавливается из него при сбросе.
var ClubCatalog = []Club{
	{ID: 1, Name: "Real Madrid", League: "La Liga", Logo: logoBaseURL + "86.png"},
	{ID: 2, Name: "FC Barcelona", League: "La Liga", Logo: logoBaseURL + "81.png"},
	{ID: 3, Name: "Atlético Madrid", League: "La Liga", Logo: logoBaseURL + "78.png"},
	{ID: 4, Name: "Manchester City", League: "Premier League", Logo: logoBaseURL + "65.png"},
	{ID: 5, Name: "Liverpool", League: "Premier League", Logo: logoBaseURL + "64.png"},
	{ID: 6, Name: "Arsenal", League: "Premier League", Logo: logoBaseURL + "57.png"},
	{ID: 7, Name: "Chelsea", League: "Premier League", Logo: logoBaseURL + "61.png"},
	{ID: 8, Name: "Manchester United", League: "Premier League", Logo: logoBaseURL + "66.png"},
	{ID: 9, Name: "Tottenham Hotspur", League: "Premier League", Logo: logoBaseURL + "73.png"},
	{ID: 10, Name: "Bayern München", League: "Bundesliga", Logo: logoBaseURL + "5.png"},
	{ID: 11, Name: "Borussia Dortmund", League: "Bundesliga", Logo: logoBaseURL + "4.png"},
	{ID: 12, Name: "Bayer Leverkusen", League: "Bundesliga", Logo: logoBaseURL + "3.png"},
	{ID: 13, Name: "Inter", League: "Serie A", Logo: logoBaseURL + "108.png"},
	{ID: 14, Name: "AC Milan", League: "Serie A", Logo: logoBaseURL + "98.png"},
	{ID: 15, Name: "Juventus", League: "Serie A", Logo: logoBaseURL + "109.png"},
	{ID: 16, Name: "Napoli", League: "Serie A", Logo: logoBaseURL + "113.png"},
	{ID: 17, Name: "Paris Saint-Germain", League: "Ligue 1", Logo: logoBaseURL + "524.png"},
	{ID: 18, Name: "Olympique de Marseille", League: "Ligue 1", Logo: logoBaseURL + "516.png"},
	{ID: 19, Name: "Benfica", League: "Primeira Liga", Logo: logoBaseURL + "1903.png"},
	{ID: 20, Name: "FC Porto", League: "Primeira Liga", Logo: logoBaseURL + "503.png"},
	{ID: 21, Name: "Ajax", League: "Eredivisie", Logo: logoBaseURL + "678.png"},
	{ID: 22, Name: "PSV", League: "Eredivisie", Logo: logoBaseURL + "674.png"},
	{ID: 23, Name: "Galatasaray", League: "Süper Lig", Logo: logoBaseURL + "610.png"},
	{ID: 24, Name: "Celtic", League: "Scottish Premiership", Logo: logoBaseURL + "732.png"},
}

// FullClubPool returns a fresh copy of the catalog.
func FullClubPool() []Club {
	pool := make([]Club, len(ClubCatalog))
	copy(pool, ClubCatalog)
	return pool
}
