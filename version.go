package fasim

// Version is the released version of fasim.
var Version = "0.4.0"
