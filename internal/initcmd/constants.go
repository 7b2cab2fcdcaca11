package initcmd

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	gitignoreFile = ".gitignore"
	tempPattern   = ".init-tp-*"
)
