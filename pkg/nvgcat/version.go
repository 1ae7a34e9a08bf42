package nvgcat

const Version = "0.1.0"
