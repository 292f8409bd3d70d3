package bot

// Command is a bot command with its menu description
type Command struct {
	Name        string
	Description string
}

// command names, without the leading slash
const (
	cmdStart     = "start"
	cmdWatered   = "watered"
	cmdStatus    = "status"
	cmdMyStatus  = "mystatus"
	cmdSetPlant  = "setplant"
	cmdAllPlants = "allplants"
	cmdHelp      = "help"
	cmdEnable    = "enable"
	cmdDisable   = "disable"
)

// Commands returns all supported commands in menu order
func Commands() []Command {
	return []Command{
		{Name: cmdStart, Description: "Register yourself and your plant"},
		{Name: cmdWatered, Description: "Mark your plant as watered"},
		{Name: cmdMyStatus, Description: "Check your plant status"},
		{Name: cmdStatus, Description: "Check everyone's plants"},
		{Name: cmdAllPlants, Description: "List all registered plants"},
		{Name: cmdSetPlant, Description: "Give your plant a name"},
		{Name: cmdEnable, Description: "Turn on reminders"},
		{Name: cmdDisable, Description: "Turn off reminders"},
		{Name: cmdHelp, Description: "Show help"},
	}
}
