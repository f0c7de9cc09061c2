// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides customizations on use of viper for configuration loading.  Configuration is
assembled from a set of option functions applied, in order, to a *viper.Viper.
*/
package xviper
