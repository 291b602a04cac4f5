package main

// Short messages (one-liners)
const (
	MsgRootShort = "A manifest-driven dotfiles manager"
	MsgRootLong = `dotman deploys your configuration files from a git-managed repository
into your home directory, as symlinks or copies, driven by small
per-program manifest files. It never overwrites existing files: a
destination that is in the way is reported, not destroyed.`

	MsgDeployShort = "Deploy programs from the dotfiles repository"
	MsgDeployLong = `Deploy reads each program's <name>.dotfiles manifest and materializes
every entry into the home directory. With --all, every subdirectory of
the repository root holding a manifest is deployed in addition to the
programs named on the command line.`

	MsgCloneShort  = "Clone a dotfiles repository"
	MsgUpdateShort = "Update the dotfiles repository"
	MsgCheckShort  = "Check deployment state (not implemented)"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Path to the dotman config file (default ~/.dotmanrc)"
	MsgFlagHome     = "Target home directory for destinations"
	MsgFlagDotfiles = "Path to the dotfiles repository root"
	MsgFlagAll      = "Deploy every program found in the repository"
	MsgFlagDryRun   = "Report what would change without touching the filesystem"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN MODE - No changes were made"
	MsgNothingToDo   = "No programs to deploy. Use --all or name a program."
	MsgSummaryFormat = "\n%d applied, %d already satisfied, %d skipped, %d failed\n"
	MsgCloned        = "Cloned %s into %s\n"
	MsgUpToDate      = "Repository already up to date.\n"
)
