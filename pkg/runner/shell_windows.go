package runner

// argvNeedsShell reports whether spawning from an argument vector requires
// a shell to interpret the command line. On Windows the program receives a
// single command line string and built-ins like dir only exist inside cmd.exe.
const argvNeedsShell = true
