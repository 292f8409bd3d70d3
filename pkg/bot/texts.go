package bot

// reply texts, plain text without parse mode
const (
	welcomeGroupFmt = "🌱 Welcome %s! Plant Bot activated for this group! 🌱\n\n" +
		"Your plant: %s\n\n" +
		"Commands:\n" +
		"• /watered - Mark your plant as watered\n" +
		"• /status - Check everyone's plant status\n" +
		"• /mystatus - Check only your plant status\n" +
		"• /setplant [name] - Name your plant\n" +
		"• /allplants - See everyone's plants\n" +
		"• /help - Show help\n" +
		"• /enable - Enable reminders\n" +
		"• /disable - Disable reminders\n\n" +
		"Everyone can track their own plants! 🌿\n" +
		"Plants untouched for %d days are cleaned up automatically."

	welcomePrivateFmt = "🌱 Welcome %s! Your personal Plant Bot! 🌱\n\n" +
		"Your plant: %s\n\n" +
		"Commands:\n" +
		"/watered - Mark your plant as watered\n" +
		"/mystatus - Check your plant status\n" +
		"/setplant [name] - Name your plant\n" +
		"/help - Show help\n" +
		"/enable - Enable reminders\n" +
		"/disable - Disable reminders\n\n" +
		"Plants untouched for %d days are cleaned up automatically."

	helpGroupFmt = "🌱 Plant Bot Commands:\n\n" +
		"Plant Care:\n" +
		"• /watered - Mark YOUR plant as watered ✅\n" +
		"• /mystatus - Check your plant status 📊\n" +
		"• /status - Check everyone's plants 🌿\n" +
		"• /allplants - List all registered plants 📝\n\n" +
		"Setup:\n" +
		"• /start - Register yourself and your plant 🚀\n" +
		"• /setplant [name] - Give your plant a name 🏷️\n\n" +
		"Settings:\n" +
		"• /enable - Turn on reminders 🔔\n" +
		"• /disable - Turn off reminders 🔕\n" +
		"• /help - Show this help 💡\n\n" +
		"Each person tracks their own plant! Water every %d days, plants untouched for %d days are removed. 💬"

	helpPrivateFmt = "🌱 Personal Plant Bot Commands:\n\n" +
		"• /start - Register for notifications\n" +
		"• /watered - Mark your plant as watered\n" +
		"• /mystatus - Check your plant status\n" +
		"• /setplant [name] - Name your plant\n" +
		"• /enable - Enable reminders\n" +
		"• /disable - Disable reminders\n" +
		"• /help - Show this help\n\n" +
		"Water every %d days, plants untouched for %d days are removed. 🌿"

	wateredGroupFmt   = "✅ %s watered %s! 🌱\n📅 %s\n🗓️ Next watering in %d days"
	wateredPrivateFmt = "✅ %s is thriving! 🌱\n📅 %s\n🗓️ Next watering in %d days"

	notRegisteredText = "🌱 You haven't registered yet! Use /start first."
	neverWateredFmt   = "🌱 %s has never been watered yet!"
	noPlantsStatus    = "🌱 No plants registered yet! Everyone should use /start first."
	noPlantsList      = "🌱 No plants registered yet!"

	renamedFmt     = "🌱 Your plant is now named: %s"
	currentNameFmt = "🌱 Current plant name: %s\n\nTo change it, use: /setplant New Plant Name"

	remindersOnText  = "✅ Watering reminders enabled for everyone!"
	remindersOffText = "❌ Watering reminders disabled!"

	storeBusyText = "⏳ Plant records are unavailable right now, nothing was changed. Please try again in a moment."
)
