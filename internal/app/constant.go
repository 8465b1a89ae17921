package app

const LogPrefixNew = "internal.app.New"
